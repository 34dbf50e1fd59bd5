package repository

import (
	"context"

	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/pkg/pgconv"
	"room-booking-api/internal/usecase/readmodel"
)

// EnrollmentRepository reads enrollment records owned by the enrollment
// service. This service never writes them.
type EnrollmentRepository struct {
	db db.DBTX
}

func NewEnrollmentRepository(dbtx db.DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{db: dbtx}
}

func (r *EnrollmentRepository) FindByUserID(ctx context.Context, userID int64) (*readmodel.EnrollmentRM, error) {
	const query = `
		SELECT id, user_id, address
		FROM enrollments
		WHERE user_id = $1
		ORDER BY id
		LIMIT 1`

	var enrollment readmodel.EnrollmentRM
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&enrollment.ID, &enrollment.UserID, &enrollment.Address,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("enrollment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find enrollment by user ID", err)
	}

	return &enrollment, nil
}
