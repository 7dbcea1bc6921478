// Helpers for running the stores and the service in testcontainers.
// Used by the integration tests and by the standalone cmd/testcontainers executable.
// Expects environment variables to be loaded from .env files; every variable has a default.
//

package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/localnerve/decideforme/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	dbNetworkName    = "db"
	redisNetworkName = "redis"
	redisPort        = "6379/tcp"
	appImageName     = "decideforme-test:latest"
)

type TestContainers struct {
	Network             *testcontainers.DockerNetwork
	DBContainer         testcontainers.Container
	RedisContainer      testcontainers.Container
	AppContainer        testcontainers.Container
	AppBuilderContainer testcontainers.Container

	dbPort nat.Port
}

func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.AppContainer != nil {
		if err := tc.AppContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate DecideForMe: %v", err)
		}
	}
	if tc.AppBuilderContainer != nil {
		if err := tc.AppBuilderContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate DecideForMe builder: %v", err)
		}
	}
	if tc.RedisContainer != nil {
		if err := tc.RedisContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate Redis: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate database: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// DockerAvailable reports whether a docker daemon answers from the environment's settings
func DockerAvailable(ctx context.Context) bool {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false
	}
	defer cli.Close()

	_, err = cli.Ping(ctx)
	return err == nil
}

// CreateStoreContainers starts the database and redis on a private network
func CreateStoreContainers(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	testContainers := &TestContainers{}

	nw, err := network.New(ctx)
	if err != nil {
		exitWithError(t, err, "Failed to create network")
	}
	testContainers.Network = nw
	networkName := nw.Name

	// Database
	dbType := envOr("DB_TYPE", "mariadb")
	tcpDbPort, err := nat.NewPort("tcp", envOr("DB_PORT", defaultDBPort(dbType)))
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to create DB port")
	}
	testContainers.dbPort = tcpDbPort

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        envOr("DB_IMAGE", defaultDBImage(dbType)),
			ExposedPorts: []string{string(tcpDbPort)},
			Env:          getDBInitEnvMap(dbType),
			WaitingFor:   wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
			Networks:     []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {dbNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to start database")
	}
	testContainers.DBContainer = dbContainer

	dbHost, _ := dbContainer.Host(ctx)
	dbPort, _ := dbContainer.MappedPort(ctx, tcpDbPort)
	switch dbType {
	case "mysql", "mariadb":
		if err := performMySQLDBInit(dbHost, dbPort); err != nil {
			testContainers.Terminate(t)
			exitWithError(t, err, "Failed to initialize database")
		}
	}
	logMessage(t, "DB_HOST=%s DB_PORT=%s", dbHost, dbPort.Port())

	// Redis
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        envOr("REDIS_IMAGE", "redis:7-alpine"),
			ExposedPorts: []string{redisPort},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			Networks:     []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {redisNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to start Redis")
	}
	testContainers.RedisContainer = redisContainer

	redisHost, _ := redisContainer.Host(ctx)
	redisMapped, _ := redisContainer.MappedPort(ctx, redisPort)
	logMessage(t, "REDIS_ADDR=%s:%s", redisHost, redisMapped.Port())

	return testContainers, nil
}

// CreateAllTestContainers starts the stores and the service image wired to them
func CreateAllTestContainers(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	debugContainer := os.Getenv("DEBUG_CONTAINER")

	testContainers, err := CreateStoreContainers(t)
	if err != nil {
		return nil, err
	}
	networkName := testContainers.Network.Name

	imageExists, err := imageExists(ctx, appImageName)
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to check if image exists")
	}

	appPortNumber := envOr("PORT", "3000")
	tcpAppPort, err := nat.NewPort("tcp", appPortNumber)
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to create DecideForMe port")
	}

	appExposedPorts := []string{string(tcpAppPort)}
	if debugContainer == "true" {
		appExposedPorts = append(appExposedPorts, "2345/tcp")
	}

	hostConfigModifier := func(hostConfig *container.HostConfig) {
		if debugContainer == "true" {
			hostConfig.PortBindings = nat.PortMap{
				"2345/tcp": []nat.PortBinding{
					{HostIP: "127.0.0.1", HostPort: "2345"},
				},
			}
			hostConfig.CapAdd = []string{"SYS_PTRACE"}
			hostConfig.SecurityOpt = []string{"apparmor:unconfined"}
		}
	}

	var waitStrategy wait.Strategy
	waitStrategy = wait.ForHTTP("/api/health").WithPort(tcpAppPort).WithStartupTimeout(30 * time.Second)
	if debugContainer == "true" {
		waitStrategy = wait.ForLog("API server listening at: [::]:2345").WithStartupTimeout(5 * time.Minute)
	}

	dbType := envOr("DB_TYPE", "mariadb")
	appContainerRequest := testcontainers.ContainerRequest{
		ExposedPorts: appExposedPorts,
		Env: map[string]string{
			"STORE_TYPE":          "database",
			"DB_TYPE":             dbType,
			"DB_HOST":             dbNetworkName,
			"DB_PORT":             testContainers.dbPort.Port(),
			"DB_DATABASE":         envOr("DB_DATABASE", "decideforme"),
			"DB_USER":             envOr("DB_USER", "decideforme"),
			"DB_PASSWORD":         envOr("DB_PASSWORD", "decideforme"),
			"DB_CONNECTION_LIMIT": envOr("DB_CONNECTION_LIMIT", "5"),
			"REDIS_ADDR":          redisNetworkName + ":6379",
			"EVENTS_REDIS":        "true",
			"API_KEY":             os.Getenv("API_KEY"),
			"PORT":                appPortNumber,
		},
		HostConfigModifier: hostConfigModifier,
		WaitingFor:         waitStrategy,
		Networks:           []string{networkName},
	}

	if debugContainer == "true" {
		appContainerRequest.Entrypoint = []string{
			"/usr/local/bin/dlv",
			"--listen=:2345",
			"--headless=true",
			"--api-version=2",
			"--accept-multiclient",
			"exec",
			"./decideforme",
		}
	}

	if !imageExists {
		reaperSessionID := uuid.New().String()
		buildArgs := map[string]*string{
			"RESOURCE_REAPER_SESSION_ID": &reaperSessionID,
		}
		if debugContainer == "true" {
			buildArgs["DEBUG"] = &debugContainer
		}

		buildContext := envOr("TESTCONTAINERS_BUILD_CONTEXT", "../..")

		logMessage(t, "Image %s does not exist, building...", appImageName)
		builder, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    buildContext,
					Dockerfile: "Dockerfile",
					Repo:       "decideforme-test-builder",
					Tag:        "latest",
					BuildArgs:  buildArgs,
					BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
						opts.Target = "builder"
					},
					PrintBuildLog: true,
				},
			},
			Started: false,
		})
		if err != nil {
			testContainers.Terminate(t)
			exitWithError(t, err, "Failed to build decideforme-test-builder")
		}
		testContainers.AppBuilderContainer = builder

		imageNameParts := strings.Split(appImageName, ":")
		appContainerRequest.FromDockerfile = testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       imageNameParts[0],
			Tag:        imageNameParts[1],
			KeepImage:  true,
			BuildArgs:  buildArgs,
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = "runtime"
			},
			PrintBuildLog: true,
		}
	} else {
		logMessage(t, "Image %s exists, reusing...", appImageName)
		appContainerRequest.Image = appImageName
	}

	appContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: appContainerRequest,
		Started:          true,
	})
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to start DecideForMe")
	}
	testContainers.AppContainer = appContainer

	appHost, _ := appContainer.Host(ctx)
	appPort, _ := appContainer.MappedPort(ctx, tcpAppPort)
	logMessage(t, "BASE_URL=http://%s:%s", appHost, appPort.Port())

	logMessage(t, "DecideForMe testcontainer started successfully")
	return testContainers, nil
}

// StoreConfig returns a configuration that reaches the store containers from the host
func (tc *TestContainers) StoreConfig(ctx context.Context) (*config.Config, error) {
	dbHost, err := tc.DBContainer.Host(ctx)
	if err != nil {
		return nil, err
	}
	dbPort, err := tc.DBContainer.MappedPort(ctx, tc.dbPort)
	if err != nil {
		return nil, err
	}
	redisHost, err := tc.RedisContainer.Host(ctx)
	if err != nil {
		return nil, err
	}
	redisMapped, err := tc.RedisContainer.MappedPort(ctx, redisPort)
	if err != nil {
		return nil, err
	}

	return &config.Config{
		StoreType:         "database",
		DBType:            envOr("DB_TYPE", "mariadb"),
		DBHost:            dbHost,
		DBPort:            dbPort.Port(),
		DBDatabase:        envOr("DB_DATABASE", "decideforme"),
		DBUser:            envOr("DB_USER", "decideforme"),
		DBPassword:        envOr("DB_PASSWORD", "decideforme"),
		DBConnectionLimit: 5,
		RedisAddr:         fmt.Sprintf("%s:%s", redisHost, redisMapped.Port()),
	}, nil
}

func getDBInitEnvMap(dbType string) map[string]string {
	switch dbType {
	case "postgres":
		return map[string]string{
			"POSTGRES_PASSWORD": envOr("DB_PASSWORD", "decideforme"),
			"POSTGRES_USER":     envOr("DB_USER", "decideforme"),
			"POSTGRES_DB":       envOr("DB_DATABASE", "decideforme"),
		}
	case "mariadb", "mysql":
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": envOr("DB_ROOT_PASSWORD", "root"),
			"MYSQL_DATABASE":      envOr("DB_DATABASE", "decideforme"),
			"MYSQL_USER":          envOr("DB_USER", "decideforme"),
			"MYSQL_PASSWORD":      envOr("DB_PASSWORD", "decideforme"),
		}
	}
	return nil
}

func defaultDBImage(dbType string) string {
	switch dbType {
	case "postgres":
		return "postgres:17-alpine"
	case "mysql":
		return "mysql:8.4"
	}
	return "mariadb:11.4"
}

func defaultDBPort(dbType string) string {
	if dbType == "postgres" {
		return "5432"
	}
	return "3306"
}

// performMySQLDBInit makes sure the service user owns the service database
func performMySQLDBInit(dbHost string, dbPort nat.Port) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", envOr("DB_ROOT_PASSWORD", "root"), dbHost, dbPort.Port()))
	if err != nil {
		return fmt.Errorf("failed to connect for setup: %w", err)
	}
	defer db.Close()

	// The port listens before the server accepts logins
	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("database not ready after 30 seconds: %w", err)
	}

	database := envOr("DB_DATABASE", "decideforme")
	user := envOr("DB_USER", "decideforme")
	statements := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", database),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", user, envOr("DB_PASSWORD", "decideforme")),
		fmt.Sprintf("GRANT ALL PRIVILEGES ON %s.* TO '%s'@'%%'", database, user),
		"FLUSH PRIVILEGES",
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%s : when executing > %s", err.Error(), stmt)
		}
	}
	return nil
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func exitWithError(t *testing.T, err error, msg string) {
	if t != nil {
		t.Fatalf(msg+": %v", err)
	} else {
		fmt.Printf(msg+": %v\n", err)
		os.Exit(1)
	}
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
