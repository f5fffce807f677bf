package main

import (
	"fitbot/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.KnowledgeDocumentModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
