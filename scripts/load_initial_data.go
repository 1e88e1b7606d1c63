package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crm-workspace-backend/internal/config"
	"crm-workspace-backend/internal/database"
	"crm-workspace-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type WorkspaceData struct {
	Subdomain        string `yaml:"subdomain"`
	DisplayName      string `yaml:"display_name"`
	ActivationStatus string `yaml:"activation_status,omitempty"`
}

type MembershipData struct {
	Workspace string `yaml:"workspace"`
	Role      string `yaml:"role,omitempty"`
	Locale    string `yaml:"locale,omitempty"`
}

type UserData struct {
	FirstName       string           `yaml:"first_name"`
	LastName        string           `yaml:"last_name"`
	Email           string           `yaml:"email"`
	IsEmailVerified bool             `yaml:"is_email_verified"`
	Memberships     []MembershipData `yaml:"memberships"`
}

// File structures for YAML parsing
type WorkspacesFile struct {
	Workspaces []WorkspaceData `yaml:"workspaces"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	workspaces, err := loadWorkspaces(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	// Workspaces first, users reference them by subdomain
	workspaceMap := make(map[string]*models.Workspace)
	workspacesCreated := 0
	for _, workspaceData := range workspaces {
		workspace, created, err := createWorkspace(db, workspaceData)
		if err != nil {
			return err
		}
		workspaceMap[workspace.Subdomain] = workspace
		if created {
			workspacesCreated++
		}
	}
	log.Printf("Workspaces: %d created, %d existing", workspacesCreated, len(workspaces)-workspacesCreated)

	usersCreated, membershipsCreated := 0, 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return err
		}
		if created {
			usersCreated++
		}

		for _, membership := range userData.Memberships {
			workspace, ok := workspaceMap[membership.Workspace]
			if !ok {
				log.Printf("Skipping membership of %s: unknown workspace %q", user.Email, membership.Workspace)
				continue
			}
			created, err := createMembership(db, user, workspace, membership)
			if err != nil {
				return err
			}
			if created {
				membershipsCreated++
			}
		}
	}
	log.Printf("Users: %d created, %d existing; memberships created: %d", usersCreated, len(users)-usersCreated, membershipsCreated)

	return nil
}

func loadWorkspaces(dataDir string) ([]WorkspaceData, error) {
	var all []WorkspaceData

	err := walkYAML(dataDir, "workspaces", func(data []byte) error {
		var file WorkspacesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Workspaces...)
		return nil
	})

	return all, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var all []UserData

	err := walkYAML(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Users...)
		return nil
	})

	return all, err
}

// walkYAML calls parse with the contents of every .yaml file under dataDir whose path contains kind
func walkYAML(dataDir, kind string, parse func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(path, kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := parse(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func createWorkspace(db *gorm.DB, data WorkspaceData) (*models.Workspace, bool, error) {
	var workspace models.Workspace
	err := db.Where("subdomain = ?", data.Subdomain).First(&workspace).Error
	if err == nil {
		return &workspace, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query workspace: %w", err)
	}

	status := models.ActivationStatus(data.ActivationStatus)
	if status == "" {
		status = models.ActivationStatusActive
	}
	if !status.IsValid() {
		return nil, false, fmt.Errorf("workspace %s: invalid activation status %q", data.Subdomain, data.ActivationStatus)
	}

	workspace = models.Workspace{
		Subdomain:        data.Subdomain,
		DisplayName:      data.DisplayName,
		ActivationStatus: status,
	}
	if err := db.Create(&workspace).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create workspace: %w", err)
	}
	return &workspace, true, nil
}

func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	var user models.User
	err := db.Where("email = ?", data.Email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	user = models.User{
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		IsEmailVerified: data.IsEmailVerified,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

// createMembership adds both the role-carrying user workspace and the workspace member profile
func createMembership(db *gorm.DB, user *models.User, workspace *models.Workspace, data MembershipData) (bool, error) {
	role := models.WorkspaceRole(data.Role)
	if role == "" {
		role = models.WorkspaceRoleMember
	}
	if !role.IsValid() {
		return false, fmt.Errorf("user %s: invalid role %q", user.Email, data.Role)
	}

	var existing models.UserWorkspace
	err := db.Where("user_id = ? AND workspace_id = ?", user.ID, workspace.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query user workspace: %w", err)
	}

	locale := data.Locale
	if locale == "" {
		locale = "en"
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.UserWorkspace{UserID: user.ID, WorkspaceID: workspace.ID, Role: role}).Error; err != nil {
			return fmt.Errorf("failed to create user workspace: %w", err)
		}
		member := models.WorkspaceMember{
			WorkspaceID: workspace.ID,
			UserID:      user.ID,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			UserEmail:   user.Email,
			Locale:      locale,
		}
		if err := tx.Create(&member).Error; err != nil {
			return fmt.Errorf("failed to create workspace member: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
