package migrate

import (
	// 外部依赖
	"context"

	// 内部引用
	db "github.com/nqn-dd/NovoMD/pkg/middleware/db"
	model "github.com/nqn-dd/NovoMD/pkg/model"
	utils "github.com/nqn-dd/NovoMD/pkg/utils"
)

func Table(_ context.Context) error {
	return utils.IfErrReturn(func() error {
		return db.DB().DBIns().AutoMigrate(
			&model.Molecule{}, // 分子库
		)
	}, func() error {
		// gin index over the cached property documents
		return db.DB().DBIns().Exec(`CREATE INDEX IF NOT EXISTS idx_molecule_properties ON molecule USING gin(properties);`).Error
	})
}
