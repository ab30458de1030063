package store

// SQL query constants. All SQL lives here; PostgresStore methods
// reference these constants.

const (
	queryInsertAttempt = `
		INSERT INTO listing_attempts (
			sku, item_id, status, error_text,
			title, price, currency, condition, aspects,
			environment, listing_type, listing_duration,
			schedule_time, listing_url, created_at
		) VALUES (
			@sku, @item_id, @status, @error_text,
			@title, @price, @currency, @condition, @aspects,
			@environment, @listing_type, @listing_duration,
			@schedule_time, @listing_url, now()
		)
		RETURNING created_at`

	queryGetAttempt = `
		SELECT sku, COALESCE(item_id, ''), status, COALESCE(error_text, ''),
			title, price, currency, condition, COALESCE(aspects, '{}'),
			environment, listing_type, listing_duration,
			schedule_time, COALESCE(listing_url, ''), created_at
		FROM listing_attempts
		WHERE sku = $1`
)
