// Package seed reconciles bootstrap state at startup: well-known roles, the
// admin account, and a one-time demo catalog. Every stage is idempotent; any
// failure is fatal to startup and must keep the process from serving traffic.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/example/wardrobe/internal/identity"
	"github.com/example/wardrobe/internal/models"
)

// Config carries the bootstrap inputs. Credentials arrive as opaque strings
// from the configuration layer.
type Config struct {
	AdminEmail    string
	AdminUsername string
	AdminPassword string
	StockPolicy   StockPolicy
}

// Run executes the three bootstrap stages in order: roles, admin account,
// demo catalog. Safe to call on every startup.
func Run(db *gorm.DB, cfg Config) error {
	svc := identity.NewService(db)

	if err := ensureRoles(svc); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if err := ensureAdmin(svc, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := ensureCatalog(db, cfg.StockPolicy); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

func ensureRoles(svc *identity.Service) error {
	for _, name := range []string{models.RoleAdmin, models.RoleCustomer, models.RoleSuperAdmin} {
		exists, err := svc.RoleExists(name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := svc.CreateRole(name); err != nil {
			return err
		}
	}
	return nil
}

func ensureAdmin(svc *identity.Service, cfg Config) error {
	admin, err := svc.FindByEmail(cfg.AdminEmail)
	if err != nil {
		return err
	}
	if admin == nil {
		admin, err = svc.CreateAccount(cfg.AdminEmail, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			return err
		}
	}

	isSuperAdmin, err := svc.IsInRole(admin, models.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if isSuperAdmin {
		return nil
	}
	return svc.AddToRole(admin, models.RoleSuperAdmin)
}

// ensureCatalog populates the demo catalog once. The guard is product
// existence; the whole build runs in one transaction so a failed run leaves
// nothing behind for the guard to miss.
func ensureCatalog(db *gorm.DB, policy StockPolicy) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("catalog already populated (%d products), skipping seed", count)
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return db.Transaction(func(tx *gorm.DB) error {
		return seedCatalog(tx, policy, rng)
	})
}
