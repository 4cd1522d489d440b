package library

import (
	common "github.com/nqn-dd/NovoMD/pkg/common"
	uuid "github.com/nqn-dd/NovoMD/pkg/common/uuid"
	property "github.com/nqn-dd/NovoMD/pkg/core/property"
)

type InsertReq struct {
	Name      string `json:"name" binding:"required"`
	Structure string `json:"structure" binding:"required"`
	Format    string `json:"format"`
}

type InsertResp struct {
	UUID uuid.UUID `json:"uuid"`
}

type GetReq struct {
	UUID uuid.UUID `uri:"uuid" binding:"required"`
}

type QueryReq struct {
	common.PageReq
	Name   string `form:"name"`
	Format string `form:"format"`
}

type UpdateReq struct {
	UUID uuid.UUID `json:"uuid" binding:"required"`
	Name string    `json:"name" binding:"required"`
}

type DeleteReq struct {
	UUID uuid.UUID `json:"uuid" binding:"required"`
}

type EnrichReq struct {
	UUID       uuid.UUID `json:"uuid" binding:"required"`
	Properties []string  `json:"properties" binding:"required,min=1"`
}

type MoleculeResp struct {
	UUID       uuid.UUID          `json:"uuid"`
	Name       string             `json:"name"`
	Format     string             `json:"format"`
	Structure  string             `json:"structure"`
	Formula    string             `json:"formula"`
	NAtoms     int                `json:"n_atoms"`
	Properties []*property.Result `json:"properties,omitempty"`
	CreatedAt  string             `json:"created_at"`
	UpdatedAt  string             `json:"updated_at"`
}
