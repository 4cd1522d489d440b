package library

import (
	// 外部依赖
	"context"
	"encoding/json"
	"time"

	// 内部引用
	common "github.com/nqn-dd/NovoMD/pkg/common"
	code "github.com/nqn-dd/NovoMD/pkg/common/code"
	core "github.com/nqn-dd/NovoMD/pkg/core/library"
	molecule "github.com/nqn-dd/NovoMD/pkg/core/molecule"
	coreProperty "github.com/nqn-dd/NovoMD/pkg/core/property"
	propertyImpl "github.com/nqn-dd/NovoMD/pkg/core/property/property"
	auth "github.com/nqn-dd/NovoMD/pkg/middleware/auth"
	logger "github.com/nqn-dd/NovoMD/pkg/middleware/logger"
	model "github.com/nqn-dd/NovoMD/pkg/model"
	repo "github.com/nqn-dd/NovoMD/pkg/repo"
	repoMolecule "github.com/nqn-dd/NovoMD/pkg/repo/molecule"
)

type libraryImpl struct {
	store repo.MoleculeRepo
	calc  coreProperty.Service
}

func New() core.Service {
	return &libraryImpl{store: repoMolecule.NewMoleculeRepo(), calc: propertyImpl.New()}
}

func (l *libraryImpl) Insert(ctx context.Context, req *core.InsertReq) (*core.InsertResp, error) {
	clientID := auth.GetCurrentClient(ctx)
	if clientID == "" {
		return nil, code.UnLogin
	}

	// Reject unparseable structures at the door; the library never
	// stores notation the calculators cannot read back.
	mol, err := molecule.Parse([]byte(req.Structure), molecule.Format(req.Format))
	if err != nil {
		return nil, code.InvalidInputErr.WithErr(err)
	}

	data := &model.Molecule{
		ClientID:  clientID,
		Name:      req.Name,
		Format:    string(mol.Source),
		Structure: req.Structure,
		Formula:   mol.Formula(),
		NAtoms:    mol.NAtoms(),
	}
	if err := l.store.CreateMolecule(ctx, data); err != nil {
		logger.Errorf(ctx, "CreateMolecule err: %+v", err)
		return nil, err
	}
	return &core.InsertResp{UUID: data.UUID}, nil
}

func (l *libraryImpl) Get(ctx context.Context, req *core.GetReq) (*core.MoleculeResp, error) {
	clientID := auth.GetCurrentClient(ctx)
	if clientID == "" {
		return nil, code.UnLogin
	}
	row, err := l.store.GetMoleculeByUUID(ctx, clientID, req.UUID)
	if err != nil {
		return nil, err
	}
	return toResp(ctx, row), nil
}

func (l *libraryImpl) Query(ctx context.Context, req *core.QueryReq) (*common.PageResp[[]*core.MoleculeResp], error) {
	clientID := auth.GetCurrentClient(ctx)
	if clientID == "" {
		return nil, code.UnLogin
	}
	req.Normalize()

	q := repo.MoleculeQuery{
		ClientID: clientID,
		Offset:   req.Offset(),
		Limit:    req.PageSize,
	}
	if req.Name != "" {
		q.NameLike = &req.Name
	}
	if req.Format != "" {
		q.Format = &req.Format
	}

	rows, total, err := l.store.ListMolecules(ctx, q)
	if err != nil {
		return nil, err
	}

	list := make([]*core.MoleculeResp, 0, len(rows))
	for _, row := range rows {
		list = append(list, toResp(ctx, row))
	}
	return &common.PageResp[[]*core.MoleculeResp]{
		List:     list,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

func (l *libraryImpl) Update(ctx context.Context, req *core.UpdateReq) error {
	clientID := auth.GetCurrentClient(ctx)
	if clientID == "" {
		return code.UnLogin
	}
	return l.store.UpdateMoleculeByUUID(ctx, clientID, req.UUID, map[string]any{
		"name": req.Name,
	})
}

func (l *libraryImpl) Delete(ctx context.Context, req *core.DeleteReq) error {
	clientID := auth.GetCurrentClient(ctx)
	if clientID == "" {
		return code.UnLogin
	}
	return l.store.DeleteMoleculeByUUID(ctx, clientID, req.UUID)
}

func (l *libraryImpl) Enrich(ctx context.Context, req *core.EnrichReq) (*core.MoleculeResp, error) {
	clientID := auth.GetCurrentClient(ctx)
	if clientID == "" {
		return nil, code.UnLogin
	}
	row, err := l.store.GetMoleculeByUUID(ctx, clientID, req.UUID)
	if err != nil {
		return nil, err
	}

	calcResp, err := l.calc.Calculate(ctx, &coreProperty.CalcReq{
		Structure:  row.Structure,
		Format:     row.Format,
		Properties: req.Properties,
	})
	if err != nil {
		return nil, err
	}

	snapshot, err := json.Marshal(calcResp.Results)
	if err != nil {
		return nil, code.ComputeErr.WithErr(err)
	}
	if err := l.store.UpdateMoleculeByUUID(ctx, clientID, req.UUID, map[string]any{
		"properties": snapshot,
	}); err != nil {
		return nil, err
	}

	row.Properties = snapshot
	row.UpdatedAt = time.Now()
	return toResp(ctx, row), nil
}

func toResp(ctx context.Context, row *model.Molecule) *core.MoleculeResp {
	out := &core.MoleculeResp{
		UUID:      row.UUID,
		Name:      row.Name,
		Format:    row.Format,
		Structure: row.Structure,
		Formula:   row.Formula,
		NAtoms:    row.NAtoms,
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
		UpdatedAt: row.UpdatedAt.Format(time.RFC3339),
	}
	if len(row.Properties) > 0 {
		if err := json.Unmarshal(row.Properties, &out.Properties); err != nil {
			logger.Warnf(ctx, "molecule %s carries unreadable property snapshot: %+v", row.UUID, err)
		}
	}
	return out
}
