package main

import (
	"context"
	"fmt"
	"strings"

	dbadmin "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/catalog-service/internal/app/catalog/repo"
	"github.com/light-bringer/catalog-service/internal/app/catalog/schema"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
	"github.com/light-bringer/catalog-service/internal/platform/database"
)

// ensure runs the same idempotent provisioning the server runs at startup.
// Against a plaintext Spanner endpoint (the emulator) the instance and
// database are created first.
func ensure(ctx context.Context) error {
	target, err := parseTarget()
	if err != nil {
		return err
	}

	var provisioner schema.Provisioner
	switch target.Driver {
	case database.DriverPostgres:
		pool, err := database.OpenTarget(ctx, target, database.Options{MaxConnections: 1, EagerCheck: true})
		if err != nil {
			return err
		}
		defer pool.Close()
		provisioner = schema.NewPostgresProvisioner(pool)

	case database.DriverSpanner:
		opts := database.ClientOptions(target)
		if target.Plaintext {
			if err := ensureInstance(ctx, target.Database, opts); err != nil {
				return fmt.Errorf("failed to ensure instance: %w", err)
			}
			if err := ensureDatabase(ctx, target.Database, opts); err != nil {
				return fmt.Errorf("failed to ensure database: %w", err)
			}
		}
		provisioner = schema.NewSpannerProvisioner(target.Database, opts...)

	default:
		logger.Info("Nothing to provision", zap.String("driver", target.Driver.String()))
		return nil
	}

	if err := provisioner.EnsureSchema(ctx); err != nil {
		return err
	}
	logger.Info("Schema ready")
	return nil
}

// splitDatabasePath splits projects/P/instances/I/databases/D.
func splitDatabasePath(path string) (project, inst, db string, err error) {
	parts := strings.Split(path, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return "", "", "", fmt.Errorf("malformed Spanner database path %q", path)
	}
	return parts[1], parts[3], parts[5], nil
}

func ensureInstance(ctx context.Context, dbPath string, opts []option.ClientOption) error {
	projectID, instanceID, _, err := splitDatabasePath(dbPath)
	if err != nil {
		return err
	}
	logger.Info("Ensuring instance exists", zap.String("instance", instanceID))

	instanceAdmin, err := instance.NewInstanceAdminClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	instanceName := fmt.Sprintf("projects/%s/instances/%s", projectID, instanceID)
	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: instanceName})
	if err == nil {
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check instance: %w", err)
	}

	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     "projects/" + projectID,
		InstanceId: instanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", projectID),
			DisplayName: "Catalog Development Instance",
			NodeCount:   1,
		},
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create instance: %w", err)
	}

	// The emulator may finish before Wait is called.
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		logger.Warn("Instance creation reported an error", zap.Error(err))
	}
	logger.Info("Instance created", zap.String("instance", instanceID))
	return nil
}

func ensureDatabase(ctx context.Context, dbPath string, opts []option.ClientOption) error {
	projectID, instanceID, databaseID, err := splitDatabasePath(dbPath)
	if err != nil {
		return err
	}
	logger.Info("Ensuring database exists", zap.String("database", databaseID))

	adminClient, err := dbadmin.NewDatabaseAdminClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	_, err = adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: dbPath})
	if err == nil {
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check database: %w", err)
	}

	op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          fmt.Sprintf("projects/%s/instances/%s", projectID, instanceID),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", databaseID),
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	logger.Info("Database created", zap.String("database", databaseID))
	return nil
}

// seed upserts the demo catalog. Running it twice leaves the same rows.
func seed(ctx context.Context) error {
	target, err := parseTarget()
	if err != nil {
		return err
	}

	products := repo.SeedCatalog()
	switch target.Driver {
	case database.DriverPostgres:
		pool, err := database.OpenTarget(ctx, target, database.Options{MaxConnections: 1, EagerCheck: true})
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := repo.WritePostgres(ctx, pool, products...); err != nil {
			return err
		}

	case database.DriverSpanner:
		pool, err := database.OpenSpanner(ctx, target, database.Options{MaxConnections: 1, EagerCheck: true})
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := repo.WriteSpanner(ctx, committer.NewCommitter(pool.Client()), products...); err != nil {
			return err
		}

	default:
		logger.Info("Demo catalog is built in", zap.String("driver", target.Driver.String()))
		return nil
	}

	logger.Info("Demo catalog loaded", zap.Int("products", len(products)))
	return nil
}
