package main

import (
	"github.com/ghostwire/ghostwire/config"
	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/routes"
	"github.com/ghostwire/ghostwire/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.PostInteraction{},
		&models.Community{},
		&models.CommunityMember{},
		&models.AdminUser{},
		&models.AdminActivityLog{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
