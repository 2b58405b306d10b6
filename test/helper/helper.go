package helper_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/buildrs/match-engine/internal"
	buildrs "github.com/buildrs/match-engine/internal/client"
	"github.com/buildrs/match-engine/internal/config"
	"github.com/buildrs/match-engine/internal/entity"
	"github.com/buildrs/match-engine/pkg/path"
	"github.com/buildrs/match-engine/pkg/ratelimit"
	"github.com/go-faker/faker/v4"
	"github.com/go-redis/redis"
	"github.com/golang-migrate/migrate/v4"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ory/dockertest"
	"github.com/ory/dockertest/docker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServerResources holds everything a test package needs to talk to the
// running server and to inspect state underneath it.
type TestServerResources struct {
	Cancel        context.CancelFunc
	Config        *config.Config
	Pool          *dockertest.Pool
	DBResource    *dockertest.Resource
	RedisResource *dockertest.Resource
	ORM           *gorm.DB
	Redis         *redis.Client
	Client        *buildrs.Client
}

// SetupTestServer starts postgres and redis in Docker, runs migrations,
// boots the API server and returns a façade client pointed at it.
func SetupTestServer(ctx context.Context) (*TestServerResources, error) {
	ctx, cancel := context.WithCancel(ctx)
	var gormDB *gorm.DB
	var redisConn *redis.Client

	cfg, err := config.NewConfig("TEST")
	if err != nil {
		cancel()
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}

	pool, dbResource, redisResource, err := setupDockerResources(cfg)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("could not set up Docker resources: %w", err)
	}

	pool.MaxWait = 10 * time.Second
	if err := pool.Retry(func() error {
		gormDB, err = connectToPostgres(dbResource, cfg)
		return err
	}); err != nil {
		cancel()
		return nil, fmt.Errorf("could not connect to postgreSQL: %s", err)
	}

	if err := pool.Retry(func() error {
		redisConn, err = connectToRedis(redisResource)
		return err
	}); err != nil {
		cancel()
		return nil, fmt.Errorf("could not connect to redis: %s", err)
	}

	dbConnection, err := gormDB.DB()
	if err != nil {
		cancel()
		return nil, err
	}

	if err := runMigrations(dbConnection); err != nil {
		cancel()
		return nil, err
	}

	go internal.Run(ctx, os.Stdout, []string{"match-engine", "test"})

	baseURL := "http://localhost:" + cfg.Get("PORT")
	if !waitForServer(ctx, baseURL) {
		pool.Purge(redisResource)
		pool.Purge(dbResource)
		cancel()
		return nil, fmt.Errorf("server did not start within timeout")
	}

	// A generous limiter so test volume never trips the client-side window.
	apiClient := buildrs.New(baseURL, "integration-test", nil, ratelimit.NewLimiter(100000, time.Hour))

	return &TestServerResources{
		Cancel:        cancel,
		Config:        cfg,
		Pool:          pool,
		DBResource:    dbResource,
		RedisResource: redisResource,
		ORM:           gormDB,
		Redis:         redisConn,
		Client:        apiClient,
	}, nil
}

// CleanupTestServer stops the server and purges Docker resources.
func (resources *TestServerResources) CleanupTestServer() {
	if resources == nil {
		return
	}

	if resources.Cancel != nil {
		resources.Cancel()
	}

	if resources.Pool != nil {
		if resources.DBResource != nil {
			if err := resources.Pool.Purge(resources.DBResource); err != nil {
				log.Printf("Could not purge PostgreSQL: %s", err)
			}
		}

		if resources.RedisResource != nil {
			if err := resources.Pool.Purge(resources.RedisResource); err != nil {
				log.Printf("Could not purge Redis: %s", err)
			}
		}
	}
}

func setupDockerResources(cfg *config.Config) (*dockertest.Pool, *dockertest.Resource, *dockertest.Resource, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to docker: %s", err)
	}

	dbOptions := &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "14",
		Env: []string{
			fmt.Sprintf("POSTGRES_USER=%s", cfg.Get("POSTGRES_USER")),
			fmt.Sprintf("POSTGRES_PASSWORD=%s", cfg.Get("POSTGRES_PASSWORD")),
			fmt.Sprintf("POSTGRES_DB=%s", cfg.Get("POSTGRES_DB_NAME")),
		},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"5432/tcp": {{HostIP: "127.0.0.1", HostPort: fmt.Sprintf("%s/tcp", cfg.Get("POSTGRES_PORT"))}},
		},
	}
	dbResource, err := pool.RunWithOptions(dbOptions)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not start postgres: %s", err)
	}

	redisOptions := &dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
		PortBindings: map[docker.Port][]docker.PortBinding{
			"6379/tcp": {{HostIP: "127.0.0.1", HostPort: fmt.Sprintf("%s/tcp", cfg.Get("REDIS_PORT"))}},
		},
	}
	redisResource, err := pool.RunWithOptions(redisOptions)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not start redis: %s", err)
	}

	return pool, dbResource, redisResource, nil
}

func connectToPostgres(dbResource *dockertest.Resource, cfg *config.Config) (*gorm.DB, error) {
	hostPort := strings.Split(dbResource.GetHostPort("5432/tcp"), ":")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		hostPort[0],
		hostPort[1],
		cfg.Get("POSTGRES_USER"),
		cfg.Get("POSTGRES_PASSWORD"),
		cfg.Get("POSTGRES_DB_NAME"))

	gormDB, err := gorm.Open(postgres.Open(dsn))
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	return gormDB, sqlDB.Ping()
}

func connectToRedis(redisResource *dockertest.Resource) (*redis.Client, error) {
	redisConn := redis.NewClient(&redis.Options{
		Addr: "localhost:" + redisResource.GetPort("6379/tcp"),
	})
	return redisConn, redisConn.Ping().Err()
}

func runMigrations(db *sql.DB) error {
	driver, err := migratePostgres.WithInstance(db, &migratePostgres.Config{})
	if err != nil {
		return err
	}

	basePath, err := os.Getwd()
	if err != nil {
		return err
	}

	migrationPath, err := path.FindRoot(basePath, "migrations", true)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationPath+"/migrations", "postgres", driver)
	if err != nil {
		return err
	}

	return m.Up()
}

func waitForServer(ctx context.Context, baseURL string) bool {
	loopContext, cancelLoopContext := context.WithTimeout(ctx, 120*time.Second)
	defer cancelLoopContext()

	for {
		select {
		case <-loopContext.Done():
			return false
		default:
			resp, err := http.Get(baseURL + "/api/health")
			if err != nil {
				time.Sleep(1 * time.Second)
				continue
			}
			resp.Body.Close()

			if resp.StatusCode == http.StatusOK {
				log.Println("server is ready")
				return true
			}
			time.Sleep(1 * time.Second)
		}
	}
}

// SignUpUser registers a user through the API and fails the test on any
// non-success outcome.
func SignUpUser(t *testing.T, c *buildrs.Client, username, password, email string) entity.SignUpResponse {
	t.Helper()

	resp := c.SignUp(context.TODO(), entity.CreateUserRequest{
		Name:     "Test Name",
		Username: username,
		Password: password,
		Email:    email,
	})
	if !resp.Success {
		t.Fatalf("Failed to sign up %q: %s (status %d)", username, resp.Error, resp.Status)
	}
	return resp.Data
}

// SignInUser exchanges credentials for a JWT and attaches it to the client.
func SignInUser(t *testing.T, c *buildrs.Client, email, username, password string) string {
	t.Helper()

	resp := c.SignIn(context.TODO(), entity.SignInRequest{
		Email:    email,
		Username: username,
		Password: password,
	})
	if !resp.Success {
		t.Fatalf("Failed to sign in %q: %s (status %d)", username, resp.Error, resp.Status)
	}

	c.SetAuthToken(resp.Data.Token)
	return resp.Data.Token
}

// CreateMatchableUser registers a user through the API, signs them in (which
// attaches their token to the client) and fills in a scoring-complete
// profile. Returns the account and its profile.
func CreateMatchableUser(t *testing.T, c *buildrs.Client, username, password, email string) (entity.SignUpResponse, entity.Profile) {
	t.Helper()

	user := SignUpUser(t, c, username, password, email)
	SignInUser(t, c, email, username, password)

	resp := c.UpdateProfile(context.TODO(), user.ID, map[string]any{
		"skills":                []string{"Go", "React"},
		"experienceLevel":       "advanced",
		"location":              "Austin, TX",
		"preferredProjectTypes": []string{"web-app"},
		"availability":          "full-time",
	})
	if !resp.Success {
		t.Fatalf("Failed to fill profile for %q: %s (status %d)", username, resp.Error, resp.Status)
	}
	return user, resp.Data
}

// PopulateProfiles seeds count users with faker data, each with a complete
// developer profile, and returns the profiles.
func PopulateProfiles(db *gorm.DB, count int) ([]entity.Profile, error) {
	skillPool := [][]string{
		{"Go", "PostgreSQL", "Docker"},
		{"React", "TypeScript", "Node.js"},
		{"Python", "Django", "Redis"},
		{"Rust", "WebAssembly"},
	}
	levels := []entity.ExperienceLevel{
		entity.LevelBeginner, entity.LevelIntermediate, entity.LevelAdvanced, entity.LevelExpert,
	}

	profiles := make([]entity.Profile, 0, count)
	for i := 0; i < count; i++ {
		user := entity.User{
			ID:       entity.NewID("user"),
			Name:     faker.Name(),
			Email:    faker.Email(),
			Username: faker.Username(),
			Password: faker.Password(),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}

		profile := entity.Profile{
			ID:                    entity.NewID("profile"),
			UserID:                user.ID,
			Name:                  user.Name,
			Bio:                   faker.Sentence(),
			Skills:                skillPool[i%len(skillPool)],
			ExperienceLevel:       levels[i%len(levels)],
			PreferredProjectTypes: []string{"web-app"},
			Availability:          entity.AvailabilityFullTime,
			Location:              "Austin, TX",
		}
		if err := db.Create(&profile).Error; err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// PopulateProjects seeds count recruiting projects owned by creatorID.
func PopulateProjects(db *gorm.DB, creatorID string, count int) ([]entity.Project, error) {
	projects := make([]entity.Project, 0, count)
	for i := 0; i < count; i++ {
		project := entity.Project{
			ID:          entity.NewID("project"),
			CreatorID:   creatorID,
			Title:       faker.Sentence(),
			Description: faker.Paragraph(),
			TechStack:   []string{"Go", "React"},
			Difficulty:  entity.DifficultyMedium,
			Status:      entity.ProjectRecruiting,
		}
		if err := db.Create(&project).Error; err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}
