package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/odremano/OBProyect/internal/config"
	"github.com/odremano/OBProyect/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Negocio{},
		&models.User{},
		&models.Membership{},
		&models.Professional{},
		&models.Service{},
		&models.WorkingHours{},
		&models.TimeBlock{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Última línea de defensa contra reservas dobles: aunque dos
	// transacciones pasen el recuento de conflictos a la vez, la base
	// no deja convivir dos turnos activos solapados del mismo
	// profesional. AutoMigrate no sabe expresar esto.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        DO $$ BEGIN
            ALTER TABLE appointments ADD CONSTRAINT appointments_no_overlap
            EXCLUDE USING gist (
                professional_id WITH =,
                tsrange(start_datetime, end_datetime) WITH &&
            ) WHERE (status IN ('pending', 'confirmed'));
        EXCEPTION
            WHEN duplicate_table THEN NULL;
            WHEN duplicate_object THEN NULL;
        END $$
    `)

	return db
}
