package main

import (
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"

	"chatmate/internal/database"
	"chatmate/internal/securestore"
	"chatmate/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	store, err := securestore.Open()
	if err != nil {
		fmt.Println("Error opening secure store:", err)
		return
	}

	flags, err := securestore.OpenFlagStore()
	if err != nil {
		fmt.Println("Error opening flag store:", err)
		return
	}

	db, err := database.Init(database.Config{
		LogLevel: logger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	svc, err := services.NewServices(store, flags, db)
	if err != nil {
		fmt.Println("Error wiring services:", err)
		return
	}

	app := NewApp(svc)
	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "Chatmate",
		Width:  420,
		Height: 820,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Chatmate",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
