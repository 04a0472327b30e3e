package i18n

var en = map[string]string{
	"initializing":       "Loading ledger...",
	"terminal_too_small": "Terminal too small (min 80x24)",
	"current_size":       "Current: %dx%d",

	// Tabs
	"tab_records":    "Records",
	"tab_efficiency": "Efficiency",
	"tab_statistics": "Statistics",

	// Records
	"records_title": "Fuel Records",
	"no_records":    "No records yet. Press a to add one.",
	"records_help":  "a: add  d: delete  j/k: move",
	"col_index":     "#",
	"col_date":      "Date",
	"col_odometer":  "Odometer",
	"col_fuel":      "Fuel (L)",
	"col_price":     "Price/L",
	"col_cost":      "Cost",
	"col_station":   "Station",
	"col_note":      "Note",

	// Efficiency
	"efficiency_title": "Fuel Efficiency",
	"no_efficiency":    "Need at least two fills with increasing odometer.",
	"col_distance":     "Distance (km)",
	"col_fuel_used":    "Fuel used (L)",
	"col_km_per_l":     "km/L",
	"col_l_per_100km":  "L/100km",
	"col_span":         "Odometer span",

	// Statistics
	"statistics_title":         "Statistics",
	"monthly_title":            "Monthly Breakdown",
	"stat_total_records":       "Records",
	"stat_total_cost":          "Total cost",
	"stat_total_fuel":          "Total fuel (L)",
	"stat_average_price":       "Avg price/L",
	"stat_total_distance":      "Distance (km)",
	"stat_segment_distance":    "Measured (km)",
	"stat_average_consumption": "Avg L/100km",
	"stat_period":              "Period",
	"col_month":                "Month",
	"col_fills":                "Fills",
	"col_avg_price":            "Avg price",

	// Add form
	"add_record":        "Add Fuel Record",
	"add_help":          "Tab/Shift+Tab: field  Enter: save  Esc: cancel",
	"field_date":        "Date",
	"field_odometer":    "Odometer (km)",
	"field_fuel_amount": "Fuel amount (L)",
	"field_fuel_price":  "Price per L",
	"field_station":     "Station",
	"field_note":        "Note",

	// Delete
	"confirm_delete":      "Delete record from %s at %s km?",
	"confirm_delete_help": "y: delete  n/Esc: keep",

	// Notifications
	"notify_added":        "Record added",
	"notify_deleted":      "Record deleted",
	"notify_not_saved":    "Changed but NOT saved: %v",
	"notify_invalid":      "Invalid input: %v",
	"notify_reloaded":     "Ledger reloaded (%d records)",
	"notify_load_corrupt": "Ledger file is corrupt; starting empty",
	"notify_load_failed":  "Could not read ledger: %v",
	"notify_delete_range": "Invalid record index",
	"notify_delete_stale": "Ledger changed; record not deleted",

	// Help overlay
	"help_group_views":   "Views",
	"help_group_ledger":  "Ledger",
	"help_group_general": "General",
	"keyboard_shortcuts": "Keyboard Shortcuts",
	"help_switch_views":  "Switch views",
	"help_cycle_views":   "Cycle views",
	"help_navigate":      "Move cursor",
	"help_top_bottom":    "Jump to top / bottom",
	"help_add":           "Add record",
	"help_delete":        "Delete selected record",
	"help_toggle_help":   "Toggle this help",
	"help_open_settings": "Open settings",
	"help_reload":        "Reload ledger from storage",
	"help_quit":          "Quit",
	"help_close":         "Press ? or Esc to close",

	// Settings
	"settings":         "Settings",
	"setting_refresh":  "Refresh (s)",
	"setting_language": "Language",
	"setting_bell":     "Bell on error",
	"setting_banner":   "Notifications",
	"setting_backend":  "Storage backend",
	"setting_restart":  "Applies on next start",
	"settings_help":    "j/k: move  h/l: change  Esc: save & close",

	// Status bar
	"status_help":     "help",
	"status_add":      "add",
	"status_delete":   "delete",
	"status_settings": "settings",
	"status_refresh":  "reload",
	"status_quit":     "quit",
	"status_records":  "%d records",

	"empty_ledger": "No records yet.",

	// Web dashboard
	"web_title":          "Fuel Tracker",
	"web_dashboard":      "Dashboard",
	"web_recent":         "Recent Records",
	"web_delete":         "Delete",
	"web_delete_confirm": "Delete this record?",
	"web_submit":         "Save Record",
	"web_failed":         "Request failed",
	"web_not_saved":      "Changed but not saved",
	"web_invalid_index":  "invalid record index",
}
