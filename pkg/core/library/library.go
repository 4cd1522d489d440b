// Package library manages the stored molecule collection: client-owned
// structures with an optional cached property set.
package library

import (
	"context"

	common "github.com/nqn-dd/NovoMD/pkg/common"
)

type Service interface {
	Insert(ctx context.Context, req *InsertReq) (*InsertResp, error)
	Get(ctx context.Context, req *GetReq) (*MoleculeResp, error)
	Query(ctx context.Context, req *QueryReq) (*common.PageResp[[]*MoleculeResp], error)
	Update(ctx context.Context, req *UpdateReq) error
	Delete(ctx context.Context, req *DeleteReq) error
	// Enrich computes the requested properties for a stored molecule and
	// caches the result set on the record.
	Enrich(ctx context.Context, req *EnrichReq) (*MoleculeResp, error)
}
