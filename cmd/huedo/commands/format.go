package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/wsmith/huedo/internal/config"
	"github.com/wsmith/huedo/pkg/hue"
)

// renderTable prints an aligned, borderless table with an optional
// header row.
func renderTable(data pterm.TableData, header bool) error {
	return pterm.DefaultTable.
		WithHasHeader(header).
		WithData(data).
		Render()
}

// sortedLightIDs returns the light ids sorted numerically where
// possible, falling back to lexical order for non-numeric ids.
func sortedLightIDs(lights map[string]hue.Light) []string {
	ids := make([]string, 0, len(lights))
	for id := range lights {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})
	return ids
}

// lightListData returns the table data for the light list (ID, Name)
func lightListData(lights map[string]hue.Light) pterm.TableData {
	data := pterm.TableData{{"ID", "Name"}}
	for _, id := range sortedLightIDs(lights) {
		data = append(data, []string{id, lights[id].Name})
	}
	return data
}

// lightDetailData returns the headerless label/value table for one light
func lightDetailData(light hue.Light) pterm.TableData {
	return pterm.TableData{
		{"Name:", light.Name},
		{"Software Version:", light.SWVersion},
		{"State:", onOff(light.State.On)},
		{"Hue:", optionalInt(light.State.Hue)},
		{"Brightness:", optionalInt(light.State.Bri)},
		{"Saturation:", optionalInt(light.State.Sat)},
	}
}

// groupListData returns the table data for configured light groups
func groupListData(cfg *config.Config) pterm.TableData {
	data := pterm.TableData{{"Name", "Lights"}}
	for _, name := range cfg.GroupNames() {
		data = append(data, []string{name, joinLightIDs(cfg.LightGroups[name].Lights)})
	}
	return data
}

// lightParseable returns the parseable key=value string for a light
func lightParseable(id string, light hue.Light) string {
	return fmt.Sprintf(
		"id=%q name=%q swversion=%q on=%v hue=%s bri=%s sat=%s",
		id,
		light.Name,
		light.SWVersion,
		light.State.On,
		optionalInt(light.State.Hue),
		optionalInt(light.State.Bri),
		optionalInt(light.State.Sat),
	)
}

func onOff(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}

// optionalInt formats a state field the bridge may omit
func optionalInt(v *int) string {
	if v == nil {
		return "N/A"
	}
	return strconv.Itoa(*v)
}

func joinLightIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
