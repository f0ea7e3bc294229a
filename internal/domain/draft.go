package domain

import "fmt"

// Changes lists every field whose proposed value differs from its current
// value, grouped by apply category. Inclusion flags are not consulted.
func (d ApplyDraft) Changes() []FieldChange {
	var out []FieldChange
	add := func(category, field string, current, proposed any) {
		c, p := fmt.Sprint(current), fmt.Sprint(proposed)
		if c != p {
			out = append(out, FieldChange{Category: category, Field: field, Current: c, Proposed: p})
		}
	}

	cur, prop := d.Current, d.Proposed
	add(ApplyCategorySchedule, "watering_interval_days", cur.WateringIntervalDays, prop.WateringIntervalDays)
	add(ApplyCategorySchedule, "fertilizing_interval_days", cur.FertilizingIntervalDays, prop.FertilizingIntervalDays)
	add(ApplyCategorySchedule, "repot_interval_months", cur.RepotIntervalMonths, prop.RepotIntervalMonths)
	add(ApplyCategoryLight, "light", cur.Light, prop.Light)
	add(ApplyCategoryHumidity, "humidity_percent", cur.HumidityPercent, prop.HumidityPercent)
	add(ApplyCategoryTemperature, "temperature", cur.Temperature, prop.Temperature)
	add(ApplyCategoryWaterAmount, "water", cur.Water, prop.Water)
	return out
}

// String renders the range as "65-75°F"
func (t TemperatureRange) String() string {
	return fmt.Sprintf("%d-%d°F", t.MinF, t.MaxF)
}

// String renders the amount as "250 ml"
func (w WaterAmount) String() string {
	return fmt.Sprintf("%g %s", w.Amount, w.Unit)
}

// Categories returns the labels of the selected categories
func (f ApplyFlags) Categories() []string {
	var out []string
	if f.Schedule {
		out = append(out, ApplyCategorySchedule)
	}
	if f.Light {
		out = append(out, ApplyCategoryLight)
	}
	if f.Humidity {
		out = append(out, ApplyCategoryHumidity)
	}
	if f.Temperature {
		out = append(out, ApplyCategoryTemperature)
	}
	if f.WaterAmount {
		out = append(out, ApplyCategoryWaterAmount)
	}
	return out
}
