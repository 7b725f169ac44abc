package integration_test

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/toolkithub/accounts/internal/config"
	"github.com/toolkithub/accounts/internal/database"
	"github.com/toolkithub/accounts/internal/handlers"
	"github.com/toolkithub/accounts/internal/models"
	"github.com/toolkithub/accounts/internal/services"
	"github.com/toolkithub/accounts/tests/helpers"
	"gorm.io/gorm"
)

// TestWithMariaDB tests the service with a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	// Get container host and port
	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Run tests
	t.Run("CreditLifecycle", func(t *testing.T) {
		testCreditLifecycle(t, db)
	})

	t.Run("RoleAssignment", func(t *testing.T) {
		testRoleAssignment(t, db)
	})

	t.Run("CatalogInitialization", func(t *testing.T) {
		testCatalogInitialization(t, db)
	})

	t.Run("Handler204Behavior", func(t *testing.T) {
		testHandler204Behavior(t, db)
	})
}

// TestWithPostgreSQL tests the service with a real PostgreSQL container
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start PostgreSQL container
	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("POSTGRES_IMAGE"),
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_USER":     "testuser",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	// Get container host and port
	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(2 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Run tests
	t.Run("CreditLifecycle", func(t *testing.T) {
		testCreditLifecycle(t, db)
	})

	t.Run("RoleAssignment", func(t *testing.T) {
		testRoleAssignment(t, db)
	})

	t.Run("Handler204Behavior", func(t *testing.T) {
		testHandler204Behavior(t, db)
	})
}

// testCreditLifecycle tests profile creation and atomic credit consumption
// against a real database with row locks.
func testCreditLifecycle(t *testing.T, db *gorm.DB) {
	identity := helpers.RandomIdentity()

	profile, err := services.SaveProfile(db, identity, services.ProfileInput{
		DisplayName: "Integration User",
		Email:       "integration@example.com",
	}, 100)
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	if profile.TotalCreditsAllowed != 100 || profile.CreditsConsumed != 0 {
		t.Errorf("Expected fresh ledger 100/0, got %d/%d",
			profile.TotalCreditsAllowed, profile.CreditsConsumed)
	}

	// Consume within the allowance
	consumed, err := services.ConsumeCredits(db, identity, 40)
	if err != nil {
		t.Fatalf("Failed to consume credits: %v", err)
	}
	if !consumed {
		t.Error("Expected consumption of 40 to succeed")
	}

	// Over-consumption leaves the ledger untouched
	consumed, err = services.ConsumeCredits(db, identity, 70)
	if err != nil {
		t.Fatalf("Failed to consume credits: %v", err)
	}
	if consumed {
		t.Error("Expected consumption of 70 to be refused")
	}

	// A smaller amount still fits
	consumed, err = services.ConsumeCredits(db, identity, 50)
	if err != nil {
		t.Fatalf("Failed to consume credits: %v", err)
	}
	if !consumed {
		t.Error("Expected consumption of 50 to succeed")
	}

	status, err := services.GetCreditBalance(db, identity)
	if err != nil {
		t.Fatalf("Failed to get credit balance: %v", err)
	}
	if status == nil {
		t.Fatal("Expected a credit balance")
	}
	if status.CreditsRemaining != 10 {
		t.Errorf("Expected 10 credits remaining, got %d", status.CreditsRemaining)
	}

	// Allowance cannot drop below what is already consumed
	err = services.UpdateProfileCredits(db, identity, 50)
	if err != services.ErrAllowanceBelowConsumed {
		t.Errorf("Expected ErrAllowanceBelowConsumed, got: %v", err)
	}
}

// testRoleAssignment tests the role store with the guest default
func testRoleAssignment(t *testing.T, db *gorm.DB) {
	identity := helpers.RandomIdentity()

	role, err := services.GetUserRole(db, identity)
	if err != nil {
		t.Fatalf("Failed to get role: %v", err)
	}
	if role != models.RoleGuest {
		t.Errorf("Expected guest for unassigned identity, got %s", role)
	}

	if err := services.AssignUserRole(db, identity, models.RoleAdmin); err != nil {
		t.Fatalf("Failed to assign role: %v", err)
	}

	isAdmin, err := services.IsAdmin(db, identity)
	if err != nil {
		t.Fatalf("Failed to check admin: %v", err)
	}
	if !isAdmin {
		t.Error("Expected identity to be admin after assignment")
	}

	// Re-assignment to another role overwrites
	if err := services.AssignUserRole(db, identity, models.RoleUser); err != nil {
		t.Fatalf("Failed to re-assign role: %v", err)
	}
	role, err = services.GetUserRole(db, identity)
	if err != nil {
		t.Fatalf("Failed to get role: %v", err)
	}
	if role != models.RoleUser {
		t.Errorf("Expected user after re-assignment, got %s", role)
	}
}

// testCatalogInitialization tests the one-shot embedded seed load
func testCatalogInitialization(t *testing.T, db *gorm.DB) {
	initialized, err := services.InitializeTools(db)
	if err != nil {
		t.Fatalf("Failed to initialize tools: %v", err)
	}
	if !initialized {
		t.Error("Expected first initialization to populate the catalog")
	}

	tools, err := services.GetAllTools(db)
	if err != nil {
		t.Fatalf("Failed to list tools: %v", err)
	}
	if len(tools) == 0 {
		t.Fatal("Expected a populated tool catalog")
	}

	// Second call is a no-op
	initialized, err = services.InitializeTools(db)
	if err != nil {
		t.Fatalf("Failed on repeat initialization: %v", err)
	}
	if initialized {
		t.Error("Expected repeat initialization to be a no-op")
	}

	toolsAfter, err := services.GetAllTools(db)
	if err != nil {
		t.Fatalf("Failed to list tools: %v", err)
	}
	if len(toolsAfter) != len(tools) {
		t.Errorf("Expected catalog unchanged, got %d then %d tools", len(tools), len(toolsAfter))
	}
}

// TestHealthCheck tests the health check functionality
func TestHealthCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:     "mysql",
		DBHost:     host,
		DBPort:     port.Port(),
		DBDatabase: "testdb",
		DBUser:     "testuser",
		DBPassword: "testpass",
		AuthzURL:   "http://localhost:9999", // Non-existent service
	}

	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run health check
	result := services.HealthCheck(cfg, db)

	// Database should be healthy
	if result.Database != "ok" {
		t.Errorf("Expected database to be ok, got: %s", result.Database)
	}

	// Auth backend should be unreachable
	if result.AuthBackend != "unreachable" {
		t.Errorf("Expected auth backend to be unreachable, got: %s", result.AuthBackend)
	}

	// Overall status should be unhealthy
	if result.Status != "unhealthy" {
		t.Errorf("Expected status to be unhealthy, got: %s", result.Status)
	}
}

// testHandler204Behavior tests the handler's 204 No Content responses with a
// real database
func testHandler204Behavior(t *testing.T, db *gorm.DB) {
	identity := helpers.RandomIdentity()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("identity", identity)
		return c.Next()
	})
	handler := &handlers.AccountHandler{DB: db, Cfg: &config.Config{DefaultCreditAllowance: 100}}
	app.Get("/api/account/profile", handler.GetOwnProfile)
	app.Get("/api/account/profile/:identity", handler.GetProfile)

	// No profile yet -> 204
	req := httptest.NewRequest("GET", "/api/account/profile", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 204)
	helpers.AssertNoContent(t, resp)

	// Lookup of an unknown identity -> 204
	req = httptest.NewRequest("GET", "/api/account/profile/"+helpers.RandomIdentity(), nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 204)
	helpers.AssertNoContent(t, resp)
}
