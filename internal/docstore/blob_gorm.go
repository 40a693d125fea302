package docstore

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const gormBlobKey = "document"

type documentBlob struct {
	Key       string `gorm:"primaryKey;size:50"`
	Payload   []byte `gorm:"type:bytea"`
	UpdatedAt time.Time
}

// GormBlob guarda o documento serializado em uma tabela de uma linha só.
// Útil quando já existe um Postgres na infraestrutura; a aplicação
// continua lendo e escrevendo o documento inteiro.
type GormBlob struct {
	db *gorm.DB
}

func NewGormBlob(dbURL string) (*GormBlob, error) {
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(&documentBlob{}); err != nil {
		return nil, err
	}

	return &GormBlob{db: db}, nil
}

func (g *GormBlob) Load(ctx context.Context) ([]byte, error) {
	var row documentBlob
	err := g.db.WithContext(ctx).
		Where("key = ?", gormBlobKey).
		First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.Payload, nil
}

func (g *GormBlob) Save(ctx context.Context, data []byte) error {
	row := documentBlob{Key: gormBlobKey, Payload: data}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
}

func (g *GormBlob) Delete(ctx context.Context) error {
	return g.db.WithContext(ctx).
		Where("key = ?", gormBlobKey).
		Delete(&documentBlob{}).Error
}
