package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"assetvault/models"
	"assetvault/utils"
)

func adminClaims() *utils.Claims {
	return &utils.Claims{Role: models.RoleAdmin, Department: "Digital"}
}

func userClaims(department string) *utils.Claims {
	return &utils.Claims{Role: models.RoleUser, Department: department}
}

func TestBuildAssetFilterAdminNoParams(t *testing.T) {
	filter := BuildAssetFilter(adminClaims(), AssetListOptions{})

	assert.Equal(t, bson.M{"is_active": true}, filter)
}

func TestBuildAssetFilterAdminDepartment(t *testing.T) {
	filter := BuildAssetFilter(adminClaims(), AssetListOptions{Department: "Marketing"})

	assert.Equal(t, "Marketing", filter["department"])
	assert.NotContains(t, filter, "$or")
}

func TestBuildAssetFilterAdminAllDepartments(t *testing.T) {
	// "all" is the explicit no-filter sentinel.
	filter := BuildAssetFilter(adminClaims(), AssetListOptions{Department: "all"})

	assert.NotContains(t, filter, "department")
}

func TestBuildAssetFilterAdminSearch(t *testing.T) {
	filter := BuildAssetFilter(adminClaims(), AssetListOptions{Search: "banner"})

	orGroup, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, orGroup, 3)
	assert.Equal(t, bson.M{"$regex": "banner"}, orGroup[0]["content_name"])
	assert.Equal(t, bson.M{"$regex": "banner"}, orGroup[1]["description"])
	assert.Equal(t, bson.M{"$regex": "banner"}, orGroup[2]["tags"])
	assert.NotContains(t, filter, "$and")
}

func TestBuildAssetFilterSearchEscapesRegex(t *testing.T) {
	filter := BuildAssetFilter(adminClaims(), AssetListOptions{Search: "v1.2 (final)"})

	orGroup, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$regex": `v1\.2 \(final\)`}, orGroup[0]["content_name"])
}

func TestBuildAssetFilterNonAdminDepartmentGroup(t *testing.T) {
	filter := BuildAssetFilter(userClaims("Design"), AssetListOptions{})

	orGroup, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, orGroup, 3)
	assert.Equal(t, bson.M{"department": "Design"}, orGroup[0])
	assert.Equal(t, bson.M{"department": ""}, orGroup[1])
	assert.Equal(t, bson.M{"department": nil}, orGroup[2])
}

func TestBuildAssetFilterNonAdminIgnoresDepartmentParam(t *testing.T) {
	// Non-admins cannot widen visibility by passing a department.
	filter := BuildAssetFilter(userClaims("Design"), AssetListOptions{Department: "Marketing"})

	orGroup, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"department": "Design"}, orGroup[0])
	assert.NotContains(t, filter, "department")
}

func TestBuildAssetFilterCallerWithoutDepartment(t *testing.T) {
	// A department-less caller is not restricted: assets stored under any
	// department, "Sales" included, stay visible.
	filter := BuildAssetFilter(userClaims(""), AssetListOptions{})

	assert.Equal(t, bson.M{"is_active": true}, filter)
}

func TestBuildAssetFilterCallerWithoutDepartmentSearch(t *testing.T) {
	filter := BuildAssetFilter(userClaims(""), AssetListOptions{Search: "banner"})

	assert.NotContains(t, filter, "$and")

	orGroup, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, orGroup, 3)
	assert.Equal(t, bson.M{"$regex": "banner"}, orGroup[0]["content_name"])
}

func TestBuildAssetFilterNonAdminSearchConjunction(t *testing.T) {
	filter := BuildAssetFilter(userClaims("Design"), AssetListOptions{Search: "logo"})

	// Search and visibility must combine conjunctively, not as one big OR.
	assert.NotContains(t, filter, "$or")

	andGroup, ok := filter["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, andGroup, 2)

	searchGroup, ok := andGroup[0]["$or"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, searchGroup, 3)

	departmentGroup, ok := andGroup[1]["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, departmentGroup, 3)
	assert.Equal(t, bson.M{"department": "Design"}, departmentGroup[0])
}

func TestBuildAssetFilterAspectRatio(t *testing.T) {
	filter := BuildAssetFilter(userClaims("Design"), AssetListOptions{AspectRatio: models.AspectRatio916})

	assert.Equal(t, models.AspectRatio916, filter["aspect_ratio"])
	assert.Equal(t, true, filter["is_active"])
}

func TestBuildDocumentFilterCallerWithoutDepartment(t *testing.T) {
	filter := BuildDocumentFilter(userClaims(""), DocumentListOptions{})

	assert.Equal(t, bson.M{"is_active": true}, filter)
}

func TestBuildDocumentFilterMirrorsAssetRules(t *testing.T) {
	filter := BuildDocumentFilter(userClaims("Finance"), DocumentListOptions{Search: "invoice", Category: "Contracts"})

	assert.Equal(t, "Contracts", filter["category"])

	andGroup, ok := filter["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, andGroup, 2)

	searchGroup, ok := andGroup[0]["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, searchGroup, 3)
	assert.Equal(t, bson.M{"$regex": "invoice"}, searchGroup[0]["title"])
}
