package repo

import (
	// 外部依赖
	"context"

	gorm "gorm.io/gorm"

	// 内部引用
	uuid "github.com/nqn-dd/NovoMD/pkg/common/uuid"
	db "github.com/nqn-dd/NovoMD/pkg/middleware/db"
	model "github.com/nqn-dd/NovoMD/pkg/model"
)

// BaseDB gives repo implementations the request-scoped gorm handle and
// the id/uuid translation every table built on model.BaseModel shares.
type BaseDB interface {
	DBWithContext(ctx context.Context) *gorm.DB
	UUID2ID(ctx context.Context, m model.BaseDBModel, uuids ...uuid.UUID) map[uuid.UUID]int64
}

type baseDB struct{}

func NewBaseDB() BaseDB {
	return &baseDB{}
}

func (b *baseDB) DBWithContext(ctx context.Context) *gorm.DB {
	return db.DB().DBWithContext(ctx)
}

func (b *baseDB) UUID2ID(ctx context.Context, m model.BaseDBModel, uuids ...uuid.UUID) map[uuid.UUID]int64 {
	out := make(map[uuid.UUID]int64, len(uuids))
	if len(uuids) == 0 {
		return out
	}
	var rows []struct {
		ID   int64
		UUID uuid.UUID
	}
	if err := b.DBWithContext(ctx).Model(m).
		Select("id", "uuid").
		Where("uuid IN ?", uuids).
		Find(&rows).Error; err != nil {
		return out
	}
	for _, r := range rows {
		out[r.UUID] = r.ID
	}
	return out
}
