package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Buyer queries.
const (
	queryCreateBuyer = `
		INSERT INTO buyers (
			email, phone, first_name, last_name, buyer_type,
			preferred_areas, source, external_id, unsubscribed,
			created_at, updated_at
		) VALUES (
			@email, @phone, @first_name, @last_name, @buyer_type,
			@preferred_areas, @source, @external_id, @unsubscribed,
			now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetBuyer = `
		SELECT id, email, phone, first_name, last_name, buyer_type,
			preferred_areas, COALESCE(source, ''), COALESCE(external_id, ''), unsubscribed,
			created_at, updated_at
		FROM buyers
		WHERE id = $1`

	queryGetBuyerByEmailOrPhone = `
		SELECT id, email, phone, first_name, last_name, buyer_type,
			preferred_areas, COALESCE(source, ''), COALESCE(external_id, ''), unsubscribed,
			created_at, updated_at
		FROM buyers
		WHERE (email = $1 AND $1 <> '') OR (phone = $2 AND $2 <> '')
		LIMIT 1`

	queryGetBuyerByExternalID = `
		SELECT id, email, phone, first_name, last_name, buyer_type,
			preferred_areas, COALESCE(source, ''), COALESCE(external_id, ''), unsubscribed,
			created_at, updated_at
		FROM buyers
		WHERE external_id = $1`

	queryListBuyers = `
		SELECT id, email, phone, first_name, last_name, buyer_type,
			preferred_areas, COALESCE(source, ''), COALESCE(external_id, ''), unsubscribed,
			created_at, updated_at
		FROM buyers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	queryCountBuyers = `SELECT COUNT(*) FROM buyers`

	queryListBuyersByArea = `
		SELECT id, email, phone, first_name, last_name, buyer_type,
			preferred_areas, COALESCE(source, ''), COALESCE(external_id, ''), unsubscribed,
			created_at, updated_at
		FROM buyers
		WHERE $1 = ANY(preferred_areas)
		ORDER BY created_at DESC`

	queryListBuyersByIDs = `
		SELECT id, email, phone, first_name, last_name, buyer_type,
			preferred_areas, COALESCE(source, ''), COALESCE(external_id, ''), unsubscribed,
			created_at, updated_at
		FROM buyers
		WHERE id = ANY($1)`

	queryListBuyersByIDsSubscribed = `
		SELECT id, email, phone, first_name, last_name, buyer_type,
			preferred_areas, COALESCE(source, ''), COALESCE(external_id, ''), unsubscribed,
			created_at, updated_at
		FROM buyers
		WHERE id = ANY($1) AND NOT unsubscribed`

	queryUpdateBuyer = `
		UPDATE buyers SET
			email = @email,
			phone = @phone,
			first_name = @first_name,
			last_name = @last_name,
			buyer_type = @buyer_type,
			preferred_areas = @preferred_areas,
			source = @source,
			external_id = @external_id,
			unsubscribed = @unsubscribed,
			updated_at = now()
		WHERE id = @id
		RETURNING updated_at`

	queryDeleteBuyer = `DELETE FROM buyers WHERE id = $1`

	queryCountBuyersVIP = `SELECT COUNT(*) FROM buyers WHERE source = $1`

	queryCountBuyersByArea = `
		SELECT area, COUNT(*)
		FROM buyers, unnest(preferred_areas) AS area
		GROUP BY area`

	queryCountBuyersByType = `
		SELECT buyer_type, COUNT(*)
		FROM buyers
		GROUP BY buyer_type`

	queryCountBuyersBySource = `
		SELECT COALESCE(NULLIF(source, ''), 'unknown'), COUNT(*)
		FROM buyers
		GROUP BY COALESCE(NULLIF(source, ''), 'unknown')`

	queryBuyerMonthlyGrowth = `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month, COUNT(*)
		FROM buyers
		GROUP BY month
		ORDER BY month`
)

// Property queries.
const (
	queryGetProperty = `
		SELECT id, title, street_address, city, state, COALESCE(zip, ''),
			asking_price, min_price, updated_at
		FROM properties
		WHERE id = $1`

	queryUpsertProperty = `
		INSERT INTO properties (
			id, title, street_address, city, state, zip,
			asking_price, min_price, updated_at
		) VALUES (
			@id, @title, @street_address, @city, @state, @zip,
			@asking_price, @min_price, now()
		)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			street_address = EXCLUDED.street_address,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			zip = EXCLUDED.zip,
			asking_price = EXCLUDED.asking_price,
			min_price = EXCLUDED.min_price,
			updated_at = now()
		RETURNING updated_at`

	queryListPropertySummaries = `
		SELECT id, title, street_address, city, state
		FROM properties
		WHERE id = ANY($1)`
)

// Offer queries.
const (
	queryCreateOffer = `
		INSERT INTO offers (
			property_id, buyer_id, offered_price, status, counter_price,
			modification_history, offer_timestamp, created_at
		) VALUES (
			@property_id, @buyer_id, @offered_price, @status, @counter_price,
			@modification_history, now(), now()
		)
		RETURNING id, offer_timestamp, created_at`

	queryGetOffer = `
		SELECT o.id, o.property_id, o.buyer_id, o.offered_price, o.status,
			o.counter_price, COALESCE(o.modification_history, '[]'), o.offer_timestamp, o.created_at,
			b.first_name, b.last_name, b.email, b.phone
		FROM offers o
		JOIN buyers b ON b.id = o.buyer_id
		WHERE o.id = $1`

	queryGetOfferByBuyerAndProperty = `
		SELECT o.id, o.property_id, o.buyer_id, o.offered_price, o.status,
			o.counter_price, COALESCE(o.modification_history, '[]'), o.offer_timestamp, o.created_at,
			b.first_name, b.last_name, b.email, b.phone
		FROM offers o
		JOIN buyers b ON b.id = o.buyer_id
		WHERE o.buyer_id = $1 AND o.property_id = $2`

	// Compare-and-update: only wins if the stored price is still the one the
	// caller read. A concurrent raise changes offered_price and this matches
	// zero rows.
	queryRaiseOffer = `
		UPDATE offers SET
			offered_price = $3,
			status = $4,
			modification_history = COALESCE(modification_history, '[]'::jsonb) || $5::jsonb,
			offer_timestamp = now()
		WHERE id = $1 AND offered_price = $2`

	queryUpdateOfferStatus = `
		UPDATE offers SET
			status = $2,
			counter_price = $3,
			modification_history = COALESCE(modification_history, '[]'::jsonb) || $4::jsonb,
			offer_timestamp = now()
		WHERE id = $1
		RETURNING id, property_id, buyer_id, offered_price, status,
			counter_price, COALESCE(modification_history, '[]'), offer_timestamp, created_at`

	queryListOffersByProperty = `
		SELECT o.id, o.property_id, o.buyer_id, o.offered_price, o.status,
			o.counter_price, COALESCE(o.modification_history, '[]'), o.offer_timestamp, o.created_at,
			b.first_name, b.last_name, b.email, b.phone
		FROM offers o
		JOIN buyers b ON b.id = o.buyer_id
		WHERE o.property_id = $1
		ORDER BY o.offer_timestamp DESC`

	queryListOffersByBuyer = `
		SELECT o.id, o.property_id, o.buyer_id, o.offered_price, o.status,
			o.counter_price, COALESCE(o.modification_history, '[]'), o.offer_timestamp, o.created_at,
			b.first_name, b.last_name, b.email, b.phone
		FROM offers o
		JOIN buyers b ON b.id = o.buyer_id
		WHERE o.buyer_id = $1
		ORDER BY o.offer_timestamp DESC`

	queryExpirePendingBefore = `
		UPDATE offers SET
			status = 'EXPIRED',
			modification_history = COALESCE(modification_history, '[]'::jsonb) || $2::jsonb
		WHERE status = 'PENDING' AND offer_timestamp < $1`
)

// Reporting queries.
const (
	queryCountOffersByStatus = `
		SELECT status, COUNT(*)
		FROM offers
		GROUP BY status`

	queryTrendSince = `
		SELECT to_char(date_trunc('day', offer_timestamp), 'YYYY-MM-DD') AS day,
			status, COUNT(*)
		FROM offers
		WHERE offer_timestamp >= $1
		GROUP BY day, status
		ORDER BY day ASC`

	queryTopProperties = `
		SELECT property_id, COUNT(*) AS offer_count
		FROM offers
		GROUP BY property_id
		ORDER BY offer_count DESC, property_id ASC
		LIMIT $1`
)
