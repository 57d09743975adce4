package config

import (
	"strings"
	"testing"
)

func TestParseGroups(t *testing.T) {
	csvData := `id,name,playlist_id
patagonia,Patagonia,PLqo040G7sAp4SqwAI_5_3VcwEuk8xiMM5
casa-rural,Casa Rural,PLqo040G7sAp7uhQLbCuusvLIO8IPQUBHl
uploads,Subidas,
`

	groups, err := ParseGroups(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseGroups() returned error: %v", err)
	}

	if len(groups) != 3 {
		t.Fatalf("ParseGroups() returned %d groups, want 3", len(groups))
	}
	if groups[0].ID != "patagonia" || groups[0].Name != "Patagonia" {
		t.Errorf("first group = %+v, want patagonia/Patagonia", groups[0])
	}
	if groups[2].PlaylistID != "" {
		t.Errorf("uploads group playlist_id = %q, want empty (channel uploads)", groups[2].PlaylistID)
	}
}

func TestParseGroupsMissingColumn(t *testing.T) {
	csvData := "id,name\npatagonia,Patagonia\n"

	if _, err := ParseGroups(strings.NewReader(csvData)); err == nil {
		t.Error("ParseGroups() should fail when playlist_id column is missing")
	}
}

func TestParseGroupsReservedID(t *testing.T) {
	csvData := "id,name,playlist_id\nall,Todos,PLxxx\n"

	if _, err := ParseGroups(strings.NewReader(csvData)); err == nil {
		t.Error(`ParseGroups() should reject the reserved group id "all"`)
	}
}

func TestParseGroupsSkipsDuplicatesAndBlanks(t *testing.T) {
	csvData := `id,name,playlist_id
patagonia,Patagonia,PLone

patagonia,Duplicada,PLtwo
,Sin ID,PLthree
`

	groups, err := ParseGroups(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseGroups() returned error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("ParseGroups() returned %d groups, want 1", len(groups))
	}
	if groups[0].PlaylistID != "PLone" {
		t.Errorf("kept group playlist = %q, want PLone (first occurrence wins)", groups[0].PlaylistID)
	}
}

func TestParseGroupsEmpty(t *testing.T) {
	if _, err := ParseGroups(strings.NewReader("id,name,playlist_id\n")); err == nil {
		t.Error("ParseGroups() should fail when no groups are present")
	}
}

func TestParseGroupsDefaultName(t *testing.T) {
	csvData := "id,name,playlist_id\npatagonia,,PLone\n"

	groups, err := ParseGroups(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseGroups() returned error: %v", err)
	}
	if groups[0].Name != "patagonia" {
		t.Errorf("group name = %q, want id fallback %q", groups[0].Name, "patagonia")
	}
}
