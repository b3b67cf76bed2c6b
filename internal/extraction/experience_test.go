package extraction

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperienceSectionBased(t *testing.T) {
	text := strings.Join([]string{
		"Jane Doe",
		"Experience",
		"",
		"2019 - 2022 Acme Corp - Senior Developer",
		"Responsibilities: Built internal tooling",
		"",
		"2022 - present Globex Inc - Lead Engineer",
		"Responsibilities: Ran the platform team",
	}, "\n")

	exps, overflow := ExtractExperience(text)
	require.Len(t, exps, 2)
	assert.Empty(t, overflow)

	assert.Equal(t, "Acme Corp", exps[0].Company)
	assert.Equal(t, "Senior Developer", exps[0].Title)
	assert.Equal(t, "2019", exps[0].StartDate)
	assert.Equal(t, "2022", exps[0].EndDate)
	assert.False(t, exps[0].IsCurrent)
	assert.Equal(t, "Built internal tooling", exps[0].Description)

	assert.Equal(t, "Globex Inc", exps[1].Company)
	assert.Equal(t, "present", exps[1].EndDate)
	assert.True(t, exps[1].IsCurrent)
}

func TestParseSingleExperienceLabeledEntry(t *testing.T) {
	entry := strings.Join([]string{
		"Company: Acme Corp",
		"Position: Senior Developer",
		"Duration: 2019 - 2022",
		"Responsibilities: Built internal tooling",
	}, "\n")

	exp := parseSingleExperience(entry)
	require.NotNil(t, exp)
	assert.Equal(t, "Acme Corp", exp.Company)
	assert.Equal(t, "Senior Developer", exp.Title)
	assert.Equal(t, "2019", exp.StartDate)
	assert.Equal(t, "2022", exp.EndDate)
	assert.Contains(t, exp.Description, "Built internal tooling")
}

func TestExtractExperienceProjectBlocks(t *testing.T) {
	var b strings.Builder
	b.WriteString("Resume without an experience heading\n\n")
	for i := 1; i <= 8; i++ {
		fmt.Fprintf(&b, "Project #%d\n", i)
		fmt.Fprintf(&b, "Organization: Customer %d Holdings\n", i)
		b.WriteString("Role: Implementation Specialist working on long running engagements\n")
		b.WriteString("Description: Delivered the rollout end to end for this client.\n\n")
	}

	exps, overflow := ExtractExperience(b.String())
	// Eight blocks found, the first five stay detailed and the rest are
	// handed back for relocation
	require.Len(t, exps, 5)
	require.Len(t, overflow, 3)
	assert.Equal(t, "Customer 1 Holdings", exps[0].Company)
	assert.Equal(t, "Customer 6 Holdings", overflow[0].Company)
	assert.Equal(t, "Customer 8 Holdings", overflow[2].Company)
}

func TestAdvancedExtractRelocatesExperienceOverflow(t *testing.T) {
	var b strings.Builder
	b.WriteString("Jane Doe\n\n")
	for i := 1; i <= 8; i++ {
		fmt.Fprintf(&b, "Project #%d\n", i)
		fmt.Fprintf(&b, "Organization: Customer %d Holdings\n", i)
		b.WriteString("Role: Implementation Specialist working on long running engagements\n")
		b.WriteString("Description: Delivered the rollout end to end for this client.\n\n")
	}

	data := AdvancedExtract(b.String())
	require.Len(t, data.Experience, 5)
	require.Len(t, data.OtherExperience, 3)
	assert.Equal(t, "Customer 6 Holdings", data.OtherExperience[0].Company)
	assert.NoError(t, data.Validate())
}

func TestParseSingleExperienceDefaults(t *testing.T) {
	// Position found, everything else falls back to defaults
	exp := parseSingleExperience("Worked as Senior Consultant on various initiatives over the years")
	require.NotNil(t, exp)
	assert.Equal(t, "Company", exp.Company)
	assert.NotEqual(t, "Position", exp.Title)
	assert.Equal(t, "Start Date", exp.StartDate)
	assert.Equal(t, "End Date", exp.EndDate)
}

func TestParseSingleExperienceNoSignalDiscarded(t *testing.T) {
	// No company, position, dates or description markers anywhere
	exp := parseSingleExperience("just some lowercase words that mean nothing here")
	assert.Nil(t, exp)
}

func TestSplitBefore(t *testing.T) {
	got := splitBefore("intro\n2019 - 2020 first\n2021 - 2022 second", entryStartMarkers[0])
	require.Len(t, got, 3)
	assert.Equal(t, "intro\n", got[0])
	assert.True(t, strings.HasPrefix(got[1], "2019"))
	assert.True(t, strings.HasPrefix(got[2], "2021"))
}

func TestExtractEntryTechnologies(t *testing.T) {
	techs := ExtractEntryTechnologies("Technology: ServiceNow, JavaScript; REST APIs")
	assert.Equal(t, []string{"ServiceNow", "JavaScript", "REST APIs"}, techs)

	assert.Nil(t, ExtractEntryTechnologies("no labeled list here"))
}
