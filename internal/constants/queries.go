package constants

const (
	InsertPositionSample = `
	INSERT INTO position_samples (
		drone_id,
		mission_id,
		x,
		y,
		z,
		rotation_y,
		logged_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id;
	`

	GetLatestSampleBefore = `
	SELECT * FROM position_samples
	WHERE drone_id = $1 AND logged_at < $2
	ORDER BY logged_at DESC
	LIMIT 1;
	`

	DeleteSamplesOlderThan = `
	DELETE FROM position_samples WHERE logged_at < $1;
	`

	InsertWaypoint = `
	INSERT INTO waypoints (mission_id, x, y, z)
	VALUES ($1, $2, $3, $4)
	RETURNING id;
	`

	GetWaypointsByMission = `
	SELECT * FROM waypoints WHERE mission_id = $1 ORDER BY id;
	`

	InsertDeviationRecord = `
	INSERT INTO deviation_records (
		mission_id,
		drone_id,
		x,
		y,
		z,
		rotation_y,
		recorded_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id;
	`

	GetDeviationsByMission = `
	SELECT * FROM deviation_records
	WHERE mission_id = $1
	ORDER BY recorded_at;
	`

	CountDeviationsByMission = `
	SELECT COUNT(*) FROM deviation_records WHERE mission_id = $1;
	`

	InsertMissionResult = `
	INSERT INTO mission_results (
		user_id,
		mission_id,
		drone_id,
		total_time,
		deviation_count,
		collision_count,
		score,
		success,
		status,
		completed_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id;
	`

	GetResultsByUser = `
	SELECT * FROM mission_results
	WHERE user_id = $1
	ORDER BY completed_at DESC;
	`
)
