package schema

import (
	"context"
	"fmt"

	dbadmin "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"google.golang.org/api/option"

	"github.com/light-bringer/catalog-service/migrations"
)

// DDLFunc submits DDL statements to a Spanner database and waits for completion.
type DDLFunc func(ctx context.Context, database string, statements []string) error

// SpannerProvisioner applies the embedded Spanner DDL through the admin API.
type SpannerProvisioner struct {
	database string
	apply    DDLFunc
}

// NewSpannerProvisioner creates a provisioner for database using the admin client options.
func NewSpannerProvisioner(database string, opts ...option.ClientOption) *SpannerProvisioner {
	return &SpannerProvisioner{
		database: database,
		apply:    adminDDL(opts),
	}
}

// NewSpannerProvisionerWithDDL creates a provisioner with a custom DDL submitter.
func NewSpannerProvisionerWithDDL(database string, apply DDLFunc) *SpannerProvisioner {
	return &SpannerProvisioner{database: database, apply: apply}
}

// EnsureSchema submits the IF NOT EXISTS DDL as one batch.
func (p *SpannerProvisioner) EnsureSchema(ctx context.Context) error {
	statements, err := migrations.UpStatements(migrations.SpannerDir)
	if err != nil {
		return provisioningError(fmt.Errorf("load ddl: %w", err))
	}

	if err := p.apply(ctx, p.database, statements); err != nil {
		return provisioningError(err)
	}
	return nil
}

func adminDDL(opts []option.ClientOption) DDLFunc {
	return func(ctx context.Context, database string, statements []string) error {
		adminClient, err := dbadmin.NewDatabaseAdminClient(ctx, opts...)
		if err != nil {
			return fmt.Errorf("failed to create admin client: %w", err)
		}
		defer adminClient.Close()

		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   database,
			Statements: statements,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update: %w", err)
		}

		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL: %w", err)
		}
		return nil
	}
}
