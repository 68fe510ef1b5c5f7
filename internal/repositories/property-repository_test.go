package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"property-control/pkg/types"
)

func TestBuildPropertyFilter_Empty(t *testing.T) {
	where, args := buildPropertyFilter(types.Filter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildPropertyFilter_Search(t *testing.T) {
	where, args := buildPropertyFilter(types.Filter{Search: "ноутбук"})

	assert.Equal(t, "WHERE (p.name ILIKE $1 OR p.code ILIKE $1 OR p.description ILIKE $1)", where)
	assert.Equal(t, []interface{}{"%ноутбук%"}, args)
}

func TestBuildPropertyFilter_DepartmentTargetsCurrentHolder(t *testing.T) {
	where, args := buildPropertyFilter(types.Filter{
		Filter: map[string]interface{}{"department": "3"},
	})

	assert.Equal(t, "WHERE p.current_department_id = $1", where)
	assert.Equal(t, []interface{}{"3"}, args)
}

func TestBuildPropertyFilter_UnknownFieldIgnored(t *testing.T) {
	where, args := buildPropertyFilter(types.Filter{
		Filter: map[string]interface{}{"hacker": "1; DROP TABLE properties"},
	})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildPropertyFilter_SearchAndFiltersCombined(t *testing.T) {
	where, args := buildPropertyFilter(types.Filter{
		Search: "dell",
		Filter: map[string]interface{}{"status": "active"},
	})

	assert.Contains(t, where, "p.name ILIKE $1")
	assert.Contains(t, where, "p.status = $2")
	assert.Contains(t, where, " AND ")
	assert.Len(t, args, 2)
}
