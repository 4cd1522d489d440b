package repo

import (
	// 外部依赖
	"context"

	// 内部引用
	uuid "github.com/nqn-dd/NovoMD/pkg/common/uuid"
	model "github.com/nqn-dd/NovoMD/pkg/model"
)

// MoleculeQuery filters the library listing. ClientID is always set;
// the rest are optional.
type MoleculeQuery struct {
	ClientID string
	NameLike *string
	Format   *string
	OrderBy  string // default id desc
	Offset   int
	Limit    int
}

type MoleculeRepo interface {
	CreateMolecule(ctx context.Context, data *model.Molecule) error
	GetMoleculeByUUID(ctx context.Context, clientID string, id uuid.UUID) (*model.Molecule, error)
	ListMolecules(ctx context.Context, q MoleculeQuery) ([]*model.Molecule, int64, error)
	UpdateMoleculeByUUID(ctx context.Context, clientID string, id uuid.UUID, data map[string]any) error
	DeleteMoleculeByUUID(ctx context.Context, clientID string, id uuid.UUID) error
}
