package pubchem

import (
	"context"
	"net/http"
	"time"

	resty "github.com/go-resty/resty/v2"

	config "github.com/nqn-dd/NovoMD/internal/config"
	code "github.com/nqn-dd/NovoMD/pkg/common/code"
	logger "github.com/nqn-dd/NovoMD/pkg/middleware/logger"
	repo "github.com/nqn-dd/NovoMD/pkg/repo"
)

type property struct {
	Title            string `json:"Title"`
	MolecularFormula string `json:"MolecularFormula"`
	IUPACName        string `json:"IUPACName"`
	IsomericSMILES   string `json:"IsomericSMILES"`
	CanonicalSMILES  string `json:"CanonicalSMILES"`
	SMILES           string `json:"SMILES"`
}

type PropertyResponse struct {
	PropertyTable struct {
		Properties []property `json:"Properties"`
	} `json:"PropertyTable"`
}

type pubchemImpl struct {
	client *resty.Client
}

func NewPubChemRepo() repo.PubChemRepo {
	baseURL := config.Global().RPC.PubChem.Addr

	return &pubchemImpl{
		client: resty.New().
			SetTimeout(30*time.Second).
			EnableTrace().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

func (p *pubchemImpl) GetCompoundByName(ctx context.Context, name string) (*repo.CompoundInfo, error) {
	properties := "Title,MolecularFormula,IUPACName,IsomericSMILES,CanonicalSMILES,SMILES"
	urlPath := "/rest/pug/compound/name/{name}/property/{props}/JSON"

	propResp := &PropertyResponse{}
	res, err := p.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"props": properties,
			"name":  name,
		}).
		SetResult(propResp).
		Get(urlPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to request properties from PubChem: %v", err)
		return nil, code.RPCHttpErr.WithErr(err)
	}

	if res.StatusCode() == http.StatusNotFound {
		return nil, code.CompoundNotFound.WithMsgf("no PubChem record for %q", name)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, code.RPCHttpCodeErr.WithMsgf("PubChem property query failed: status %d", res.StatusCode())
	}

	if len(propResp.PropertyTable.Properties) == 0 {
		return nil, code.CompoundNotFound.WithMsgf("empty PubChem property table for %q", name)
	}

	propData := propResp.PropertyTable.Properties[0]

	title := propData.Title
	if title == "" {
		title = propData.IUPACName
	}

	smiles := propData.IsomericSMILES
	if smiles == "" {
		smiles = propData.CanonicalSMILES
	}
	if smiles == "" {
		smiles = propData.SMILES
	}
	if smiles == "" {
		return nil, code.CompoundNotFound.WithMsgf("PubChem record for %q carries no SMILES", name)
	}

	return &repo.CompoundInfo{
		Name:             title,
		MolecularFormula: propData.MolecularFormula,
		SMILES:           smiles,
	}, nil
}
