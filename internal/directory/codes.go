// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Who selects the audience category of a name search.
type Who int

const (
	WhoAll Who = iota
	WhoFaculty
	WhoAdmin
	WhoClassified
	WhoOtherStaff
	WhoStudentEmployees
)

var whoNames = map[string]Who{
	"all":               WhoAll,
	"faculty":           WhoFaculty,
	"admin":             WhoAdmin,
	"classified":        WhoClassified,
	"other_staff":       WhoOtherStaff,
	"student_employees": WhoStudentEmployees,
}

// Code returns the value the search form sends as SelectedWhoID.
func (w Who) Code() string { return strconv.Itoa(int(w)) }

// LookupWho resolves a symbolic audience name such as "faculty".
func LookupWho(name string) (Who, error) {
	w, ok := whoNames[normalizeSymbol(name)]
	if !ok {
		return 0, fmt.Errorf("unknown audience %q (valid: %s)", name, strings.Join(sortedKeys(whoNames), ", "))
	}
	return w, nil
}

// Department is an upstream department code. DepartmentAll is the sentinel
// selecting every department.
type Department string

// DepartmentAll selects all departments.
const DepartmentAll Department = ""

// allDepartmentsCode is what the search form submits in SelectedDepartments
// when "all departments" is checked.
const allDepartmentsCode = "39"

var departments = map[string]Department{
	"all":                    DepartmentAll,
	"academicaffairs":        "31",
	"admin":                  "32",
	"admissions":             "39",
	"alumni":                 "AL",
	"ams":                    "Dr71",
	"blastercard":            "CO",
	"bookstore":              "BK",
	"budget":                 "38",
	"ccit":                   "41",
	"construction":           "Dr26",
	"career":                 "PL",
	"casa":                   "Dr81",
	"cbe":                    "02",
	"chemistry":              "03",
	"chief_of_staff":         "Dr32",
	"cee":                    "Dr72",
	"case":                   "Dr85",
	"cerse":                  "Dr86",
	"cecs":                   "Dr75",
	"ccac":                   "C1",
	"ceri":                   "IE",
	"cgs":                    "Dr84",
	"controller":             "37",
	"counseling":             "Dr78",
	"mail":                   "63",
	"diversity":              "Dr76",
	"eb":                     "11",
	"ee":                     "Dr73",
	"eg":                     "01",
	"safety":                 "29",
	"environment":            "04",
	"epics":                  "16",
	"facilities":             "48",
	"financial_aid":          "43",
	"sodexo":                 "AR",
	"csm_foundation":         "FN",
	"ge":                     "05",
	"geology_museum":         "MU",
	"gp":                     "06",
	"gs":                     "36",
	"green_center_events":    "61",
	"hr":                     "47",
	"lais":                   "17",
	"international_programs": "A1",
	"international_office":   "A2",
	"club_sports":            "Dr70",
	"legal":                  "27",
	"lb":                     "46",
	"me":                     "Dr74",
	"mt":                     "09",
	"ms":                     "10",
	"mn":                     "12",
	"mep":                    "97",
	"orc":                    "AU",
	"pe":                     "13",
	"athletics":              "14",
	"physics":                "15",
	"presidents_office":      "30",
	"public_relations":       "49",
	"public_safety":          "50",
	"purchasing":             "57",
	"registrar":              "52",
	"remrsec":                "Dr30",
	"research_admin":         "54",
	"technology_transfer":    "AC",
	"special_programs":       "71",
	"sao":                    "56",
	"ship":                   "Dr80",
	"health_center":          "45",
	"housing":                "44",
	"student_life":           "35",
	"student_services":       "Dr77",
	"wave_phenomena":         "CE",
	"wisem":                  "Dr69",
}

// LookupDepartment resolves a symbolic department name such as "physics".
func LookupDepartment(name string) (Department, error) {
	d, ok := departments[normalizeSymbol(name)]
	if !ok {
		return "", fmt.Errorf("unknown department %q", name)
	}
	return d, nil
}

// DepartmentNames returns every symbolic department name, sorted.
func DepartmentNames() []string {
	return sortedKeys(departments)
}

func normalizeSymbol(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
