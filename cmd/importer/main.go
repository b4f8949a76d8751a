// Command importer loads the species assessment dataset from a CSV file into
// the catalog database.
//
// The CSV uses the Portuguese column headers of the published assessment
// dataset (Reino, Filo, ..., Listas_e_Convencoes) and Latin-1 encoding.
// Boolean columns carry "Sim" for true; any other value is false. Rows whose
// scientific name already exists in the catalog are skipped.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/store"
	"github.com/vheb/biomap/migrations"
	"github.com/vheb/biomap/models"
)

func main() {
	log := logger.NewLogger("biomap-importer")

	var (
		filePath    string
		dsn         string
		submitterID int64
	)
	flag.StringVar(&filePath, "file", "", "path of the CSV file to import")
	flag.StringVar(&dsn, "d", os.Getenv("STORAGE_DB_DATABASE_URI"), "PostgreSQL connection string")
	flag.Int64Var(&submitterID, "submitter-id", 0, "user ID recorded as submitter of every imported record")
	flag.Parse()

	if filePath == "" || dsn == "" || submitterID == 0 {
		log.Fatal().Msg("-file, -d and -submitter-id are all required")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, config.DB{DSN: dsn}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repository := store.NewSpeciesRepository(db, log)

	file, err := os.Open(filePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", filePath).Msg("error opening CSV file")
	}
	defer file.Close()

	// The published dataset is Latin-1 encoded.
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(file))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		log.Fatal().Err(err).Msg("error reading CSV header")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var processed, imported, skipped int
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatal().Err(err).Int("row", processed+1).Msg("error reading CSV row")
		}
		processed++

		species := speciesFromRow(row, columns)
		species.SubmitterID = submitterID

		if _, err = repository.CreateSpecies(ctx, species); err != nil {
			if errors.Is(err, store.ErrScientificNameAlreadyExists) {
				skipped++
				continue
			}
			log.Fatal().Err(err).Str("scientific_name", species.ScientificName).Msg("error importing record")
		}
		imported++
	}

	log.Info().
		Int("processed", processed).
		Int("imported", imported).
		Int("skipped", skipped).
		Msg("import finished")
}

func speciesFromRow(row []string, columns map[string]int) models.Species {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	boolCell := func(name string) bool {
		return strings.EqualFold(cell(name), "Sim")
	}

	return models.Species{
		Kingdom:                cell("Reino"),
		Phylum:                 cell("Filo"),
		Class:                  cell("Classe"),
		Order:                  cell("Ordem"),
		Family:                 cell("Familia"),
		Genus:                  cell("Genero"),
		ScientificName:         cell("Nome_Cientifico"),
		PreviousScientificName: cell("Nome_Cientifico_Anterior"),
		Author:                 cell("Autor"),
		CommonName:             cell("Nome_Comum"),
		Group:                  cell("Grupo"),
		AssessmentPeriod:       cell("Mes_Ano_Avaliacao"),
		Category:               cell("Categoria"),
		PossiblyExtinct:        boolCell("Possivemente_Extinta"),
		Criteria:               cell("Criterio"),
		Justification:          cell("Justificativa"),
		EndemicToBrazil:        boolCell("Endemica_Brasil"),
		OnNationalList:         boolCell("Consta_em_Lista_Nacional_Oficial"),
		States:                 cell("Estado"),
		Region:                 cell("Regiao"),
		Biome:                  cell("Bioma"),
		HydrographicBasin:      cell("Bacia_Hidrografica"),
		FederalProtectedArea:   cell("Unidade_de_Conservacao_Federal"),
		StateProtectedArea:     cell("Unidade_de_Conservacao_Estadual"),
		PrivateReserve:         cell("RPPN"),
		Migratory:              boolCell("Migratoria"),
		PopulationTrend:        cell("Tendencia_Populacional"),
		Threats:                cell("Ameaca"),
		Uses:                   cell("Uso"),
		ConservationActions:    cell("Acao_Conservacao"),
		ActionPlan:             cell("Plano_de_Acao"),
		TreatyLists:            cell("Listas_e_Convencoes"),
	}
}
