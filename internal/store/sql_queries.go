package store

// Fixed SQL statements used by the repositories. Placeholders use the $N
// form, which both the pgx and go-sqlite3 drivers accept, so the same
// statements serve both backends. Dynamic filters are built with squirrel in
// the repositories themselves.
const (
	createUser = `INSERT INTO users (user_id, email, password_hash, role, theme, created_at)
    VALUES ($1, $2, $3, $4, $5, $6);`

	findUserByEmail = `SELECT user_id, email, password_hash, role, theme, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, role, theme, created_at
    FROM users
    WHERE user_id = $1;`

	listUsers = `SELECT user_id, email, password_hash, role, theme, created_at
    FROM users
    ORDER BY created_at;`

	updateUserRole = `UPDATE users
    SET role = $1
    WHERE user_id = $2;`

	updateUserPassword = `UPDATE users
    SET password_hash = $1
    WHERE user_id = $2;`

	updateUserTheme = `UPDATE users
    SET theme = $1
    WHERE user_id = $2;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`
)

const (
	createSession = `INSERT INTO sessions (token, user_id, expires_at)
    VALUES ($1, $2, $3);`

	findSession = `SELECT token, user_id, expires_at
    FROM sessions
    WHERE token = $1;`

	updateSessionExpiry = `UPDATE sessions
    SET expires_at = $1
    WHERE token = $2;`

	deleteSession = `DELETE FROM sessions
    WHERE token = $1;`

	deleteSessionsForUser = `DELETE FROM sessions
    WHERE user_id = $1;`

	deleteExpiredSessions = `DELETE FROM sessions
    WHERE expires_at <= $1;`
)

const (
	createMeasurement = `INSERT INTO measurements (id, user_id, recorded_at, weight_kg, body_fat_pct, waist_cm, note)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`

	findMeasurement = `SELECT id, user_id, recorded_at, weight_kg, body_fat_pct, waist_cm, note
    FROM measurements
    WHERE user_id = $1 AND id = $2;`

	deleteMeasurement = `DELETE FROM measurements
    WHERE user_id = $1 AND id = $2;`
)

const (
	createWaterEntry = `INSERT INTO water_entries (id, user_id, drunk_at, volume_ml)
    VALUES ($1, $2, $3, $4);`

	deleteWaterEntry = `DELETE FROM water_entries
    WHERE user_id = $1 AND id = $2;`
)

const (
	createFast = `INSERT INTO fasts (id, user_id, started_at, ended_at, target_hours)
    VALUES ($1, $2, $3, $4, $5);`

	findOpenFast = `SELECT id, user_id, started_at, ended_at, target_hours
    FROM fasts
    WHERE user_id = $1 AND ended_at IS NULL;`

	finishFast = `UPDATE fasts
    SET ended_at = $1
    WHERE user_id = $2 AND id = $3 AND ended_at IS NULL;`

	listFasts = `SELECT id, user_id, started_at, ended_at, target_hours
    FROM fasts
    WHERE user_id = $1
    ORDER BY started_at DESC;`

	deleteFast = `DELETE FROM fasts
    WHERE user_id = $1 AND id = $2;`
)
