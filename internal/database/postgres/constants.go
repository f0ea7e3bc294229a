package postgres

// Error Messages
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToMarshal           = "failed to marshal plant column"
	ErrMsgFailedToUnmarshal         = "failed to unmarshal plant column"
)

const selectPlantSQL = `
SELECT p.plant_id, p.name, p.common_names, p.family, p.scientific_name, p.category,
       p.diameter_inches, p.height_inches, p.material, p.season, p.environment,
       p.fertilizer_form, p.settings, p.updated_at,
       c.advice, c.created_at, c.updated_at
FROM plants p
LEFT JOIN care_plans c ON c.plant_id = p.plant_id
WHERE p.plant_id = $1`

const upsertPlantSQL = `
INSERT INTO plants (plant_id, name, common_names, family, scientific_name, category,
                    diameter_inches, height_inches, material, season, environment,
                    fertilizer_form, settings, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (plant_id) DO UPDATE SET
    name = EXCLUDED.name,
    common_names = EXCLUDED.common_names,
    family = EXCLUDED.family,
    scientific_name = EXCLUDED.scientific_name,
    category = EXCLUDED.category,
    diameter_inches = EXCLUDED.diameter_inches,
    height_inches = EXCLUDED.height_inches,
    material = EXCLUDED.material,
    season = EXCLUDED.season,
    environment = EXCLUDED.environment,
    fertilizer_form = EXCLUDED.fertilizer_form,
    settings = EXCLUDED.settings,
    updated_at = EXCLUDED.updated_at`

const upsertCarePlanSQL = `
INSERT INTO care_plans (plant_id, advice, created_at, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (plant_id) DO UPDATE SET
    advice = EXCLUDED.advice,
    created_at = EXCLUDED.created_at,
    updated_at = EXCLUDED.updated_at`

const deleteCarePlanSQL = `DELETE FROM care_plans WHERE plant_id = $1`
