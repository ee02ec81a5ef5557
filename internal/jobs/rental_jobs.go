package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/logger"
)

// ExpireStalePendingRentals cancels PENDING rentals whose rental date has
// already passed without an admin decision.
func (jr *JobRunner) ExpireStalePendingRentals() {
	jr.runWithRecovery("ExpireStalePendingRentals", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		query := `
			UPDATE rentals
			SET status = 'CANCELLED',
			    updated_on = $2
			WHERE status = 'PENDING'
			  AND rental_date < $1
			RETURNING id, user_id, vehicle_id, rental_date
		`

		rows, err := jr.db.QueryContext(ctx, query, today, time.Now().UTC().Format(time.RFC3339))
		if err != nil {
			logger.Error("Failed to expire stale pending rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, userID, vehicleID int32
			var rentalDate string
			if err := rows.Scan(&id, &userID, &vehicleID, &rentalDate); err != nil {
				logger.Error("Failed to scan expired rental", "error", err)
				continue
			}
			count++
			logger.Debug("Cancelled stale pending rental",
				"rental_id", id,
				"user_id", userID,
				"vehicle_id", vehicleID,
				"rental_date", rentalDate)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating expired rentals", "error", err)
			return
		}

		logger.Info("Cancelled stale pending rentals", "count", count)
	})
}

// SendPickupReminders emails renters whose APPROVED rental starts tomorrow.
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		ctx := context.Background()
		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

		query := `
			SELECT r.id, r.rental_date, u.email, u.name, v.name
			FROM rentals r
			JOIN users u ON u.id = r.user_id
			JOIN vehicles v ON v.id = r.vehicle_id
			WHERE r.status = 'APPROVED'
			  AND r.rental_date = $1
		`

		rows, err := jr.db.QueryContext(ctx, query, tomorrow)
		if err != nil {
			logger.Error("Failed to query upcoming pickups", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		for rows.Next() {
			var rentalID int32
			var rentalDate, email, userName, vehicleName string
			if err := rows.Scan(&rentalID, &rentalDate, &email, &userName, &vehicleName); err != nil {
				logger.Error("Failed to scan upcoming pickup", "error", err)
				continue
			}
			if err := jr.email.SendPickupReminder(ctx, email, userName, vehicleName, rentalDate); err != nil {
				logger.Error("Failed to send pickup reminder",
					"rental_id", rentalID,
					"email", email,
					"error", err)
				continue
			}
			sent++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating upcoming pickups", "error", err)
			return
		}

		logger.Info("Sent pickup reminders", "count", sent)
	})
}
