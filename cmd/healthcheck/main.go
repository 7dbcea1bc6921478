// main.go
//
// DecideForMe decision assistant data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of decideforme.
// decideforme is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// decideforme is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with decideforme.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/localnerve/decideforme/internal/ai"
	"github.com/localnerve/decideforme/internal/config"
	"github.com/localnerve/decideforme/internal/database"
	"github.com/localnerve/decideforme/internal/kvstore"
	"github.com/localnerve/decideforme/internal/services"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var db *gorm.DB
	if cfg.StoreType == kvstore.TypeDatabase {
		db, err = database.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close(db)
	}

	var rdb *redis.Client
	if cfg.StoreType == kvstore.TypeRedis {
		rdb, err = database.ConnectRedis(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
	}

	store, err := kvstore.Open(cfg.StoreType, db, rdb)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreType, err)
	}

	gateway, err := ai.New(ctx, cfg.APIKey, cfg.GeminiModel, cfg.AITimeout)
	if err != nil {
		log.Fatalf("Failed to create AI gateway: %v", err)
	}

	// Perform health check
	result := services.HealthCheck(ctx, cfg, store, gateway)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
