package main

import (
	"context"

	config "github.com/chirpnest/chirpy/internal/config/chirpy"
	pg "github.com/chirpnest/chirpy/internal/repository/postgres"
)

func initDB(ctx context.Context, cfg *config.Config) (*pg.DB, error) {
	return pg.New(ctx, cfg.DB)
}
