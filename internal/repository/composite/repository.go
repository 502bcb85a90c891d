package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/acadify/acadify-api/internal/config"
	"github.com/acadify/acadify-api/internal/repository"
	"github.com/acadify/acadify-api/internal/repository/opensearch"
	"github.com/acadify/acadify-api/internal/repository/postgres"
)

type compositeRepository struct {
	repository.PostgresRepository
	searchRepo repository.StudentSearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return &compositeRepository{
		PostgresRepository: postgres.NewPostgresRepository(dbConnections),
		searchRepo:         opensearch.NewRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) StudentSearch() repository.StudentSearchRepository {
	return r.searchRepo
}
