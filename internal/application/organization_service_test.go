package application

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/taskscout/taskscout/internal/domain/org"
	"github.com/taskscout/taskscout/internal/domain/user"
	"github.com/taskscout/taskscout/internal/repository"
	"github.com/taskscout/taskscout/internal/repository/mock"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupOrgServiceMocks(t *testing.T) (*OrgService, *mock.MockOrgRepo, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	silenceAudit(t)

	mockOrg := mock.NewMockOrgRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		Org:  mockOrg,
		User: mockUser,
	}
	svc := NewOrgService(repos, nil)
	return svc, mockOrg, mockUser
}

func storedTiers(t *testing.T, g *org.SubAdminGrant) []org.Tier {
	var tiers []org.Tier
	assert.NoError(t, json.Unmarshal(g.VendorTiers, &tiers))
	return tiers
}

// --------------------- UpsertGrant ---------------------

func TestUpsertGrant_ClosesTiersDownward(t *testing.T) {
	svc, mockOrg, mockUser := setupOrgServiceMocks(t)

	mockOrg.EXPECT().GetByID(uint(10)).Return(org.Organization{ID: 10}, nil)
	mockUser.EXPECT().GetByID(uint(6)).Return(user.User{ID: 6, Role: user.RoleOrgSubAdmin}, nil)
	mockOrg.EXPECT().GetGrantByUser(uint(6)).Return(org.SubAdminGrant{}, gorm.ErrRecordNotFound)
	mockOrg.EXPECT().CreateGrant(gomock.Any()).Return(nil)

	input := org.SubAdminGrantDTO{
		UserID:      6,
		Permissions: []org.Permission{org.PermAcceptTicket},
		VendorTiers: []org.Tier{org.Tier3},
	}
	g, err := svc.UpsertGrant(10, orgAdminClaims(2, 10), input)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []org.Tier{org.Tier1, org.Tier2, org.Tier3}, storedTiers(t, g))
}

func TestUpsertGrant_TiersDroppedWithoutAcceptPermission(t *testing.T) {
	svc, mockOrg, mockUser := setupOrgServiceMocks(t)

	mockOrg.EXPECT().GetByID(uint(10)).Return(org.Organization{ID: 10}, nil)
	mockUser.EXPECT().GetByID(uint(6)).Return(user.User{ID: 6, Role: user.RoleOrgSubAdmin}, nil)
	mockOrg.EXPECT().GetGrantByUser(uint(6)).Return(org.SubAdminGrant{}, gorm.ErrRecordNotFound)
	mockOrg.EXPECT().CreateGrant(gomock.Any()).Return(nil)

	input := org.SubAdminGrantDTO{
		UserID:      6,
		Permissions: []org.Permission{org.PermPlaceTicket, org.PermViewInvoices},
		VendorTiers: []org.Tier{org.Tier2},
	}
	g, err := svc.UpsertGrant(10, orgAdminClaims(2, 10), input)
	assert.NoError(t, err)
	assert.Empty(t, storedTiers(t, g))
}

func TestUpsertGrant_RejectsNonSubAdmin(t *testing.T) {
	svc, mockOrg, mockUser := setupOrgServiceMocks(t)

	mockOrg.EXPECT().GetByID(uint(10)).Return(org.Organization{ID: 10}, nil)
	mockUser.EXPECT().GetByID(uint(6)).Return(user.User{ID: 6, Role: user.RoleResidential}, nil)

	_, err := svc.UpsertGrant(10, orgAdminClaims(2, 10), org.SubAdminGrantDTO{UserID: 6})
	assert.ErrorIs(t, err, ErrNotSubAdmin)
}

func TestUpsertGrant_RejectsUnknownPermission(t *testing.T) {
	svc, mockOrg, mockUser := setupOrgServiceMocks(t)

	mockOrg.EXPECT().GetByID(uint(10)).Return(org.Organization{ID: 10}, nil)
	mockUser.EXPECT().GetByID(uint(6)).Return(user.User{ID: 6, Role: user.RoleOrgSubAdmin}, nil)

	input := org.SubAdminGrantDTO{UserID: 6, Permissions: []org.Permission{"sudo"}}
	_, err := svc.UpsertGrant(10, orgAdminClaims(2, 10), input)
	assert.ErrorIs(t, err, ErrUnknownPermission)
}

func TestUpsertGrant_UpdatesExisting(t *testing.T) {
	svc, mockOrg, mockUser := setupOrgServiceMocks(t)

	existing := org.SubAdminGrant{ID: 4, UserID: 6, OrgID: 10}
	mockOrg.EXPECT().GetByID(uint(10)).Return(org.Organization{ID: 10}, nil)
	mockUser.EXPECT().GetByID(uint(6)).Return(user.User{ID: 6, Role: user.RoleOrgSubAdmin}, nil)
	mockOrg.EXPECT().GetGrantByUser(uint(6)).Return(existing, nil)
	mockOrg.EXPECT().UpdateGrant(gomock.Any()).Return(nil)

	input := org.SubAdminGrantDTO{
		UserID:      6,
		Permissions: []org.Permission{org.PermAcceptTicket, org.PermManageLocations},
		VendorTiers: []org.Tier{org.Tier1},
	}
	g, err := svc.UpsertGrant(10, orgAdminClaims(2, 10), input)
	assert.NoError(t, err)
	assert.Equal(t, uint(4), g.ID)
	assert.ElementsMatch(t, []org.Tier{org.Tier1}, storedTiers(t, g))
}

// --------------------- ToggleTier ---------------------

func TestToggleTier_CheckCascadesDown(t *testing.T) {
	svc, mockOrg, _ := setupOrgServiceMocks(t)

	perms, _ := json.Marshal([]org.Permission{org.PermAcceptTicket})
	stored, _ := json.Marshal([]org.Tier{})
	grant := org.SubAdminGrant{ID: 4, UserID: 6, OrgID: 10, Permissions: perms, VendorTiers: stored}
	mockOrg.EXPECT().GetGrantByUser(uint(6)).Return(grant, nil)
	mockOrg.EXPECT().UpdateGrant(gomock.Any()).Return(nil)

	checked := true
	g, err := svc.ToggleTier(6, orgAdminClaims(2, 10), org.ToggleTierDTO{Tier: org.Tier3, Checked: &checked})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []org.Tier{org.Tier1, org.Tier2, org.Tier3}, storedTiers(t, g))
}

func TestToggleTier_UncheckRevokesUpward(t *testing.T) {
	svc, mockOrg, _ := setupOrgServiceMocks(t)

	perms, _ := json.Marshal([]org.Permission{org.PermAcceptTicket})
	stored, _ := json.Marshal([]org.Tier{org.Tier1, org.Tier2, org.Tier3})
	grant := org.SubAdminGrant{ID: 4, UserID: 6, OrgID: 10, Permissions: perms, VendorTiers: stored}
	mockOrg.EXPECT().GetGrantByUser(uint(6)).Return(grant, nil)
	mockOrg.EXPECT().UpdateGrant(gomock.Any()).Return(nil)

	checked := false
	g, err := svc.ToggleTier(6, orgAdminClaims(2, 10), org.ToggleTierDTO{Tier: org.Tier2, Checked: &checked})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []org.Tier{org.Tier1}, storedTiers(t, g))
}

func TestToggleTier_GrantMissing(t *testing.T) {
	svc, mockOrg, _ := setupOrgServiceMocks(t)

	mockOrg.EXPECT().GetGrantByUser(uint(6)).Return(org.SubAdminGrant{}, gorm.ErrRecordNotFound)

	checked := true
	_, err := svc.ToggleTier(6, orgAdminClaims(2, 10), org.ToggleTierDTO{Tier: org.Tier1, Checked: &checked})
	assert.ErrorIs(t, err, ErrGrantNotFound)
}

// --------------------- Org CRUD ---------------------

func TestDeleteOrg_MissingIsNoOp(t *testing.T) {
	svc, mockOrg, _ := setupOrgServiceMocks(t)

	mockOrg.EXPECT().GetByID(uint(99)).Return(org.Organization{}, gorm.ErrRecordNotFound)

	assert.NoError(t, svc.DeleteOrg(99, orgAdminClaims(2, 10)))
}
