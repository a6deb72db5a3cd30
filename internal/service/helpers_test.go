package service

import (
	"testing"

	"github.com/alexanderramin/pulse/internal/cache"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/testutil"
)

func setupRepos(t *testing.T) (repository.ProjectRepo, repository.TaskRepo, repository.AuditRepo, *cache.Cache) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return repository.NewSQLiteProjectRepo(db),
		repository.NewSQLiteTaskRepo(db),
		repository.NewSQLiteAuditRepo(db),
		cache.New()
}
