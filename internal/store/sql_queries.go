package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/vheb/biomap/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, created_at;`

	createResearcher = `INSERT INTO researchers (user_id, birth_date, academic_background, institution_name, cv_link, institution_id)
    VALUES ($1, $2, $3, $4, $5, $6);`

	createInstitution = `INSERT INTO institutions (user_id, legal_name, registration_number, address, contact, website)
    VALUES ($1, $2, $3, $4, $5, $6);`

	findUserByUsername = `SELECT user_id, username, email, password_hash, role, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, role, created_at
    FROM users
    WHERE user_id = $1;`

	findResearcherByUserID = `SELECT birth_date, academic_background, institution_name, cv_link, institution_id
    FROM researchers
    WHERE user_id = $1;`

	findInstitutionByUserID = `SELECT legal_name, registration_number, address, contact, website
    FROM institutions
    WHERE user_id = $1;`

	updateUserEmail = `UPDATE users SET email = $2 WHERE user_id = $1;`

	updateResearcher = `UPDATE researchers
    SET birth_date = $2, academic_background = $3, institution_name = $4, cv_link = $5, institution_id = $6
    WHERE user_id = $1;`

	updateInstitution = `UPDATE institutions
    SET legal_name = $2, registration_number = $3, address = $4, contact = $5, website = $6
    WHERE user_id = $1;`

	listScientificNames = `SELECT species_id, scientific_name
    FROM species
    ORDER BY species_id;`
)

// speciesColumns lists every species column in scan order. Kept in one place
// so the INSERT, the SELECTs, and scanSpecies stay in sync.
var speciesColumns = []string{
	"species_id",
	"kingdom", "phylum", "class", `"order"`, "family", "genus",
	"scientific_name", "previous_scientific_name", "author", "common_name",
	`"group"`, "assessment_period", "category", "possibly_extinct",
	"criteria", "justification", "endemic_to_brazil", "on_national_list",
	"states", "region", "biome", "hydrographic_basin",
	"federal_protected_area", "state_protected_area", "private_reserve",
	"migratory", "population_trend", "threats", "uses",
	"conservation_actions", "action_plan", "treaty_lists",
	"submitter_id", "created_at",
}

// queryBuilder is the shared squirrel builder configured for PostgreSQL
// dollar placeholders.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertSpecies builds the species INSERT returning the generated id
// and timestamp.
func buildInsertSpecies(species models.Species) (string, []any, error) {
	return queryBuilder.
		Insert("species").
		Columns(speciesColumns[1 : len(speciesColumns)-1]...). // all except species_id and created_at
		Values(
			species.Kingdom, species.Phylum, species.Class, species.Order, species.Family, species.Genus,
			species.ScientificName, species.PreviousScientificName, species.Author, species.CommonName,
			species.Group, species.AssessmentPeriod, species.Category, species.PossiblyExtinct,
			species.Criteria, species.Justification, species.EndemicToBrazil, species.OnNationalList,
			species.States, species.Region, species.Biome, species.HydrographicBasin,
			species.FederalProtectedArea, species.StateProtectedArea, species.PrivateReserve,
			species.Migratory, species.PopulationTrend, species.Threats, species.Uses,
			species.ConservationActions, species.ActionPlan, species.TreatyLists,
			species.SubmitterID,
		).
		Suffix("RETURNING species_id, created_at").
		ToSql()
}

// buildSelectSpecies builds a full-row species SELECT with the given
// predicate, ordered by identifier so that multi-candidate matches resolve
// deterministically to the lowest id.
func buildSelectSpecies(pred any, limit uint64) (string, []any, error) {
	return queryBuilder.
		Select(speciesColumns...).
		From("species").
		Where(pred).
		OrderBy("species_id").
		Limit(limit).
		ToSql()
}

// buildSuggestNames builds the autocomplete query: a case-insensitive
// substring match on the chosen name field, capped, in store order.
func buildSuggestNames(query string, mode models.SuggestionMode, limit uint64) (string, []any, error) {
	field := "scientific_name"
	if mode == models.SuggestByCommonName {
		field = "common_name"
	}

	return queryBuilder.
		Select("common_name", "scientific_name").
		From("species").
		Where(sq.ILike{field: "%" + query + "%"}).
		OrderBy("species_id").
		Limit(limit).
		ToSql()
}
