package render

import (
	"encoding/json"
	"fmt"

	"autoviz/domain/chart"
)

// EChartsOption builds an ECharts option map for a chart artifact. The
// map is serialized to JSON and consumed by the echarts runtime in the
// web UI.
func EChartsOption(a *chart.Artifact, theme Theme) map[string]interface{} {
	switch a.Suggestion.Kind {
	case chart.KindLine:
		return lineOption(a, theme)
	case chart.KindPie:
		return pieOption(a, theme)
	default:
		return barOption(a, theme)
	}
}

// EChartsJSON serializes the option map
func EChartsJSON(a *chart.Artifact, theme Theme) (string, error) {
	option := EChartsOption(a, theme)
	jsonBytes, err := json.Marshal(option)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chart option: %w", err)
	}
	return string(jsonBytes), nil
}

func lineOption(a *chart.Artifact, theme Theme) map[string]interface{} {
	labels := make([]string, len(a.Points))
	values := make([]float64, len(a.Points))
	for i, p := range a.Points {
		labels[i] = p.X.Format("2006-01-02")
		values[i] = p.Y
	}

	return map[string]interface{}{
		"backgroundColor": theme.ColorBackground,
		"color":           theme.Palette,
		"title":           titleConfig(a.Title, theme),
		"tooltip":         map[string]interface{}{"trigger": "axis"},
		"grid":            gridConfig(),
		"xAxis": map[string]interface{}{
			"type":      "category",
			"data":      labels,
			"axisLine":  axisLineStyle(theme),
			"axisLabel": axisLabelStyle(theme),
		},
		"yAxis": map[string]interface{}{
			"type":      "value",
			"axisLine":  axisLineStyle(theme),
			"axisLabel": axisLabelStyle(theme),
		},
		"series": []interface{}{
			map[string]interface{}{
				"name":       a.Suggestion.Y,
				"type":       "line",
				"data":       values,
				"smooth":     true,
				"showSymbol": len(values) <= 50,
			},
		},
	}
}

func barOption(a *chart.Artifact, theme Theme) map[string]interface{} {
	return map[string]interface{}{
		"backgroundColor": theme.ColorBackground,
		"color":           theme.Palette,
		"title":           titleConfig(a.Title, theme),
		"tooltip":         map[string]interface{}{"trigger": "axis"},
		"grid":            gridConfig(),
		"xAxis": map[string]interface{}{
			"type":      "category",
			"data":      a.Labels,
			"axisLine":  axisLineStyle(theme),
			"axisLabel": axisLabelStyle(theme),
		},
		"yAxis": map[string]interface{}{
			"type":      "value",
			"axisLine":  axisLineStyle(theme),
			"axisLabel": axisLabelStyle(theme),
		},
		"series": []interface{}{
			map[string]interface{}{
				"name": a.Suggestion.Y,
				"type": "bar",
				"data": a.Values,
				"itemStyle": map[string]interface{}{
					"borderRadius": []int{4, 4, 0, 0},
				},
			},
		},
	}
}

func pieOption(a *chart.Artifact, theme Theme) map[string]interface{} {
	data := make([]interface{}, len(a.Labels))
	for i, label := range a.Labels {
		data[i] = map[string]interface{}{
			"name":  label,
			"value": a.Values[i],
		}
	}

	return map[string]interface{}{
		"backgroundColor": theme.ColorBackground,
		"color":           theme.Palette,
		"title":           titleConfig(a.Title, theme),
		"tooltip":         map[string]interface{}{"trigger": "item"},
		"legend": map[string]interface{}{
			"orient":    "vertical",
			"left":      "left",
			"textStyle": map[string]interface{}{"color": theme.ColorText},
		},
		"series": []interface{}{
			map[string]interface{}{
				"type":   "pie",
				"radius": "60%",
				"data":   data,
				"label":  map[string]interface{}{"color": theme.ColorText},
			},
		},
	}
}

func titleConfig(title string, theme Theme) map[string]interface{} {
	return map[string]interface{}{
		"text":      title,
		"left":      "center",
		"textStyle": map[string]interface{}{"color": theme.ColorText},
	}
}

func gridConfig() map[string]interface{} {
	return map[string]interface{}{
		"left":         "3%",
		"right":        "4%",
		"bottom":       "3%",
		"containLabel": true,
	}
}

func axisLineStyle(theme Theme) map[string]interface{} {
	return map[string]interface{}{
		"lineStyle": map[string]interface{}{"color": theme.ColorBorder},
	}
}

func axisLabelStyle(theme Theme) map[string]interface{} {
	return map[string]interface{}{"color": theme.ColorText}
}
