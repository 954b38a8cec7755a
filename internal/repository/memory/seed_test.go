package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sanjeevani/coordination-api/internal/model"
)

func TestSeedDirectory(t *testing.T) {
	dir := NewUserDirectory()
	ctx := context.Background()
	require.NoError(t, SeedDirectory(ctx, dir))

	entries, err := dir.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	hospital, err := dir.GetByEmail(ctx, "hospital@sanjeevani.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleHospital, hospital.Role)
	assert.Equal(t, "Dr. Rajesh Sharma", hospital.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hospital.PasswordHash), []byte("hospital123")))
}

func TestSeedDonorData(t *testing.T) {
	donations := NewDonationRepository()
	opps := NewOpportunityRepository()
	ctx := context.Background()
	require.NoError(t, SeedDonorData(ctx, donations, opps))

	history, err := donations.ListByDonor(ctx, SeedDonorID)
	require.NoError(t, err)
	assert.Len(t, history, 4)

	list, err := opps.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].Urgent)
	assert.True(t, list[1].Urgent)
}

func TestOpportunityRegisteredDonorsAreCopied(t *testing.T) {
	opps := NewOpportunityRepository()
	ctx := context.Background()
	require.NoError(t, SeedDonorData(ctx, NewDonationRepository(), opps))

	list, err := opps.List(ctx)
	require.NoError(t, err)

	opp := list[0]
	opp.RegisteredDonors = append(opp.RegisteredDonors, SeedDonorID)

	fresh, err := opps.Get(ctx, opp.ID)
	require.NoError(t, err)
	assert.Empty(t, fresh.RegisteredDonors)
}
