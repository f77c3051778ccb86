package postgres

import (
	repo "github.com/canozdemir/inventory-backend/internal/repository"
)

type Repositories struct {
	Users        repo.Users
	Items        repo.Items
	ActivityLogs repo.ActivityLogs
}

func NewRepositories(db DB) Repositories {
	return Repositories{
		Users:        &usersRepo{db},
		Items:        &itemsRepo{db},
		ActivityLogs: &activityLogsRepo{db},
	}
}
