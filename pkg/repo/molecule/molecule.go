package molecule

import (
	// 外部依赖
	"context"
	"errors"

	gorm "gorm.io/gorm"

	// 内部引用
	code "github.com/nqn-dd/NovoMD/pkg/common/code"
	uuid "github.com/nqn-dd/NovoMD/pkg/common/uuid"
	logger "github.com/nqn-dd/NovoMD/pkg/middleware/logger"
	model "github.com/nqn-dd/NovoMD/pkg/model"
	repo "github.com/nqn-dd/NovoMD/pkg/repo"
)

type moleculeImpl struct {
	repo.BaseDB
}

func NewMoleculeRepo() repo.MoleculeRepo {
	return &moleculeImpl{BaseDB: repo.NewBaseDB()}
}

func activeScope(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", 0)
}

func (r *moleculeImpl) CreateMolecule(ctx context.Context, data *model.Molecule) error {
	if err := r.DBWithContext(ctx).Create(data).Error; err != nil {
		logger.Errorf(ctx, "CreateMolecule err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (r *moleculeImpl) GetMoleculeByUUID(ctx context.Context, clientID string, id uuid.UUID) (*model.Molecule, error) {
	out := &model.Molecule{}
	err := r.DBWithContext(ctx).Scopes(activeScope).
		Where("client_id = ? AND uuid = ?", clientID, id).
		First(out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.RecordNotFound
	}
	if err != nil {
		logger.Errorf(ctx, "GetMoleculeByUUID err: %+v", err)
		return nil, code.QueryDataErr.WithErr(err)
	}
	return out, nil
}

func (r *moleculeImpl) ListMolecules(ctx context.Context, q repo.MoleculeQuery) ([]*model.Molecule, int64, error) {
	db := r.DBWithContext(ctx).Model(&model.Molecule{}).Scopes(activeScope).
		Where("client_id = ?", q.ClientID)

	if q.NameLike != nil && *q.NameLike != "" {
		db = db.Where("name ILIKE ?", "%"+*q.NameLike+"%")
	}
	if q.Format != nil && *q.Format != "" {
		db = db.Where("format = ?", *q.Format)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		logger.Errorf(ctx, "ListMolecules count err: %+v", err)
		return nil, 0, code.QueryDataErr.WithErr(err)
	}

	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = "id desc"
	}

	var rows []*model.Molecule
	if err := db.Order(orderBy).Offset(q.Offset).Limit(q.Limit).Find(&rows).Error; err != nil {
		logger.Errorf(ctx, "ListMolecules err: %+v", err)
		return nil, 0, code.QueryDataErr.WithErr(err)
	}
	return rows, total, nil
}

func (r *moleculeImpl) UpdateMoleculeByUUID(ctx context.Context, clientID string, id uuid.UUID, data map[string]any) error {
	res := r.DBWithContext(ctx).Model(&model.Molecule{}).Scopes(activeScope).
		Where("client_id = ? AND uuid = ?", clientID, id).
		Updates(data)
	if res.Error != nil {
		logger.Errorf(ctx, "UpdateMoleculeByUUID err: %+v", res.Error)
		return code.UpdateDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.RecordNotFound
	}
	return nil
}

func (r *moleculeImpl) DeleteMoleculeByUUID(ctx context.Context, clientID string, id uuid.UUID) error {
	res := r.DBWithContext(ctx).Model(&model.Molecule{}).Scopes(activeScope).
		Where("client_id = ? AND uuid = ?", clientID, id).
		Update("is_deleted", 1)
	if res.Error != nil {
		logger.Errorf(ctx, "DeleteMoleculeByUUID err: %+v", res.Error)
		return code.DeleteDataErr.WithErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return code.RecordNotFound
	}
	return nil
}
