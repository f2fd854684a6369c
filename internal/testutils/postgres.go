package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/taskscout/taskscout/internal/domain/audit"
	"github.com/taskscout/taskscout/internal/domain/bid"
	"github.com/taskscout/taskscout/internal/domain/calendar"
	"github.com/taskscout/taskscout/internal/domain/invoice"
	"github.com/taskscout/taskscout/internal/domain/location"
	"github.com/taskscout/taskscout/internal/domain/org"
	"github.com/taskscout/taskscout/internal/domain/support"
	"github.com/taskscout/taskscout/internal/domain/ticket"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/domain/vendor"
	"github.com/taskscout/taskscout/internal/domain/workorder"
)

// SetupPostgresForIntegration returns a migrated database handle for
// integration tests, either against TEST_DB_DSN or a throwaway container.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal(err)
		}
		migrate(gdb)
		return gdb, func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "taskscout",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/taskscout?sslmode=disable", host, port.Port())
	os.Setenv("DATABASE_URL", dsn)

	// retry until the container accepts connections
	var raw *sql.DB
	for i := 0; i < 10; i++ {
		raw, err = sql.Open("postgres", dsn)
		if err == nil {
			err = raw.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}
	_ = raw.Close()

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	migrate(gdb)

	cleanup := func() {
		_ = pg.Terminate(ctx)
	}

	return gdb, cleanup
}

func migrate(gdb *gorm.DB) {
	if err := gdb.AutoMigrate(
		&user.User{},
		&org.Organization{},
		&org.SubAdminGrant{},
		&vendor.MaintenanceVendor{},
		&vendor.VendorOrganization{},
		&location.Location{},
		&ticket.Ticket{},
		&ticket.Milestone{},
		&bid.VendorBid{},
		&workorder.WorkOrder{},
		&invoice.Invoice{},
		&calendar.Event{},
		&support.Request{},
		&support.Message{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatal(err)
	}
}
