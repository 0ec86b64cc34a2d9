package handlers

import (
	"linkjobs/internal/repos"
	"linkjobs/internal/services"
	"linkjobs/internal/upload"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	JobHandler     *JobHandler
	SavedHandler   *SavedJobHandler
	ProfileHandler *ProfileHandler
}

func NewDeps(db *sqlx.DB, blobs upload.BlobStore) *Deps {
	userRepo := repos.NewUserRepo(db)
	jobRepo := repos.NewJobRepo(db)
	savedRepo := repos.NewSavedJobRepo(db)

	catalogSvc := services.NewCatalogService(jobRepo, savedRepo)
	profileSvc := services.NewProfileService(userRepo)

	return &Deps{
		JobHandler:     &JobHandler{Catalog: catalogSvc},
		SavedHandler:   &SavedJobHandler{Catalog: catalogSvc},
		ProfileHandler: &ProfileHandler{Profile: profileSvc, Blobs: blobs},
	}
}
