package params

// Defaults returns the fully specified built-in parameter tree. Every tunable
// the simulation reads has an entry here, so a store constructed from this
// tree alone produces a complete, balanced fight. Version documents loaded
// from disk are merged over this tree category by category; a malformed
// category leaves its default subtree intact.
//
// Postcondition: the returned tree is freshly allocated on every call.
func Defaults() map[string]any {
	return map[string]any{
		"stamina": map[string]any{
			"max":          100.0,
			"clinch_range": 2.5,
			"cost": map[string]any{
				"jab":            1.5,
				"cross":          2.5,
				"hook":           3.0,
				"uppercut":       3.5,
				"body_surcharge": 0.5,
				"move":           0.8,
				"block":          0.4,
				"evade":          0.7,
				"clinch":         0.6,
				"wait":           0.1,
				"feint":          0.3,
			},
			"recovery": map[string]any{
				"base":         0.7,
				"hurt_penalty": 0.5,
				"clinch_bonus": 1.6,
			},
		},
		"ring": map[string]any{
			"size":          20.0,
			"corner_margin": 3.0,
			"ropes_margin":  2.0,
			"step":          1.2,
		},
		"fight": map[string]any{
			"rounds":          12,
			"ticks_per_round": 60,
			"corner_quality":  70.0,
			"count": map[string]any{
				"rise_earliest": 4,
				"out_at":        10,
				"flash_bonus":   0.25,
				"damage_scale":  0.003,
			},
			"recovered_ticks":      3,
			"stun_ticks":           4,
			"three_knockdown_rule": false,
			"score": map[string]any{
				"damage_weight": 1.0,
				"landed_weight": 2.0,
				"even_margin":   3.0,
			},
		},
		"decision": map[string]any{
			"stamina": map[string]any{
				"critical":           0.20,
				"high":               0.80,
				"conserve_mult":      2.2,
				"aggression_cut":     0.35,
				"desperation_floor":  85.0,
				"desperation_mult":   1.5,
				"fresh_aggression":   1.3,
			},
			"scorecard": map[string]any{
				"protect_mult": 1.35,
				"chase_mult":   1.5,
			},
			"risk": map[string]any{
				"hurt_damp":    0.6,
				"behind_boost": 1.3,
				"fresh_boost":  1.1,
			},
			"spatial": map[string]any{
				"too_far":              5.0,
				"far_move_mult":        2.5,
				"cornered_move_mult":   2.0,
				"cornered_offense_mult": 1.4,
			},
			"memory": map[string]any{
				"hurt_window":      30,
				"knockdown_window": 60,
				"offense_damp":     0.55,
			},
			"strategy": map[string]any{
				"variance": 0.25,
			},
			"reach": map[string]any{
				"advantage_threshold": 3.0,
				"outside_mult":        1.2,
			},
		},
		"combat": map[string]any{
			"activity": map[string]any{
				"idle_bonus": 0.03,
				"idle_cap":   0.24,
			},
			"accuracy": map[string]any{
				"base": map[string]any{
					"jab":      0.62,
					"cross":    0.52,
					"hook":     0.48,
					"uppercut": 0.44,
				},
				"min":                 0.10,
				"max":                 0.95,
				"combo_decay":         0.85,
				"counter_bonus":       1.25,
				"hurt_target_bonus":   1.20,
				"fatigue_floor":       0.70,
				"adaptability_scale":  0.008,
				"first_step_close":    1.10,
				"inside_bonus":        1.15,
				"outside_bonus":       1.15,
				"reach_per_inch":      0.015,
				"reach_range":         3.5,
				"trapped_penalty":     0.90,
				"distance_penalty":    0.12,
				"movement_penalty":    0.88,
				"clinch_smother":      0.75,
			},
			"range": map[string]any{
				"optimal": map[string]any{
					"jab":      4.0,
					"cross":    3.5,
					"hook":     2.0,
					"uppercut": 1.5,
				},
				"margin": 1.0,
			},
			"defense": map[string]any{
				"hurt_gate":     0.35,
				"corner_mult":   0.75,
				"ropes_mult":    0.85,
				"moderate_mult": 0.85,
				"heavy_mult":    0.70,
				"evade": map[string]any{
					"scale":         0.55,
					"cap":           0.45,
					"body_penalty":  0.75,
					"hook_penalty":  0.85,
					"fatigue_floor": 0.60,
					"experience_scale": 0.002,
				},
				"block": map[string]any{
					"high_guard": map[string]any{
						"base":          0.55,
						"reduction":     0.65,
						"straight_mult": 1.0,
						"hook_mult":     1.0,
						"body_mult":     0.70,
					},
					"philly_shell": map[string]any{
						"base":          0.48,
						"reduction":     0.55,
						"straight_mult": 1.25,
						"hook_mult":     0.75,
						"body_mult":     0.90,
					},
					"cross_armed": map[string]any{
						"base":          0.52,
						"reduction":     0.60,
						"straight_mult": 0.95,
						"hook_mult":     1.10,
						"body_mult":     0.80,
					},
					"skill_scale": 0.003,
					"parry_bonus": 0.002,
				},
				"passive": map[string]any{
					"scale":     0.20,
					"reduction": 0.50,
				},
			},
			"damage": map[string]any{
				"base": map[string]any{
					"jab":      3.0,
					"cross":    6.0,
					"hook":     7.0,
					"uppercut": 8.0,
				},
				"variance":         0.15,
				"weight_diff_cap":  2.5,
				"weight_diff_floor": 0.3,
				"elite_power_floor": 90.0,
				"elite_power_bonus": 1.15,
				"body_skill_scale":  0.002,
				"fatigue_floor":     0.6,
				"stun_vulnerability": 1.25,
			},
			"knockdown": map[string]any{
				"threshold_base":     18.0,
				"fresh_mult":         1.3,
				"accumulated_scale":  0.35,
				"low_stamina_scale":  0.25,
				"resist_scale":       130.0,
				"chin_80_bonus":      0.06,
				"chin_85_bonus":      0.05,
				"chin_90_bonus":      0.05,
				"exhaustion_penalty": 0.20,
				"flash": map[string]any{
					"power_chin_scale":  400.0,
					"min_power":         60.0,
					"weak_power_damp":   0.5,
					"elite_power_floor": 92.0,
					"elite_power_amp":   1.4,
					"early_round_limit": 3,
					"early_round_bonus": 1.3,
					"accumulated_amp":   1.5,
					"fresh_damp":        0.45,
					"low_stamina_amp":   1.35,
					"cap_iron":          0.008,
					"cap_great":         0.015,
					"cap_good":          0.03,
					"cap_default":       0.06,
				},
			},
			"stun": map[string]any{
				"freeze_chance": 0.25,
			},
		},
		"damage": map[string]any{
			"resistance_scale": 0.004,
			"hurt": map[string]any{
				"min":               0.05,
				"max":               0.60,
				"ratio_scale":       0.85,
				"accumulated_scale": 0.003,
				"composure_scale":   0.10,
				"stamina_scale":     0.15,
				"duration_base":     4,
				"duration_per_tier": 2,
			},
			"knockdown": map[string]any{
				"threshold_base": 20.0,
				"chin_scale":     75.0,
				"stamina_relief": 0.2,
				"chance_scale":   0.5,
				"chance_cap":     0.35,
			},
			"tko": map[string]any{
				"heavy_damage_tier":  55.0,
				"base":               0.04,
				"damage_scale":       0.002,
				"hurt_tick_scale":    0.015,
				"knockdown_scale":    0.25,
				"cut_scale":          0.03,
				"referee_scale":      1.0,
				"cap":                0.85,
			},
			"recovery": map[string]any{
				"between_rounds_damage":  4.0,
				"between_rounds_stamina": 12.0,
				"corner_quality_scale":   0.02,
			},
			"cuts": map[string]any{
				"cut_chance":      0.04,
				"swelling_chance": 0.05,
				"severity_scale":  0.02,
				"locations": map[string]any{
					"left_eyebrow":  0.25,
					"right_eyebrow": 0.25,
					"left_cheek":    0.15,
					"right_cheek":   0.15,
					"nose":          0.12,
					"forehead":      0.08,
				},
				"vision_per_severity": 0.08,
			},
		},
		"weight_class": map[string]any{
			"heavyweight": map[string]any{
				"min_weight":     201.0,
				"activity":       0.38,
				"max_combo":      3,
				"recovery_ticks": 3,
				"damage_mult":    1.35,
			},
			"cruiserweight": map[string]any{
				"min_weight":     176.0,
				"activity":       0.42,
				"max_combo":      3,
				"recovery_ticks": 3,
				"damage_mult":    1.20,
			},
			"middleweight": map[string]any{
				"min_weight":     155.0,
				"activity":       0.48,
				"max_combo":      4,
				"recovery_ticks": 2,
				"damage_mult":    1.00,
			},
			"welterweight": map[string]any{
				"min_weight":     140.0,
				"activity":       0.52,
				"max_combo":      4,
				"recovery_ticks": 2,
				"damage_mult":    0.90,
			},
			"lightweight": map[string]any{
				"min_weight":     126.0,
				"activity":       0.56,
				"max_combo":      5,
				"recovery_ticks": 1,
				"damage_mult":    0.80,
			},
			"featherweight": map[string]any{
				"min_weight":     0.0,
				"activity":       0.60,
				"max_combo":      5,
				"recovery_ticks": 1,
				"damage_mult":    0.70,
			},
		},
	}
}
