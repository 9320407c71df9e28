// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// PhaseDetail is the static reference content the informational panel shows
// for a phase: what it is, common symptoms, and tips grouped by category.
type PhaseDetail struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Symptoms    []string            `json:"symptoms,omitempty"`
	Tips        map[string][]string `json:"tips,omitempty"`
}

// PhaseDetailFor returns the reference content for a phase label, or nil for
// labels without content ("Unknown").
func PhaseDetailFor(phase string) *PhaseDetail {
	for i := range phaseDetails {
		if phaseDetails[i].Name == phase {
			return &phaseDetails[i]
		}
	}
	return nil
}

var phaseDetails = []PhaseDetail{
	{
		Name:        PhaseMenstruation,
		Description: "The phase when the uterine lining is shed and hormone levels (estrogen and progesterone) are at their lowest.",
		Symptoms:    []string{"Cramping", "Fatigue", "Lower back pain"},
		Tips: map[string][]string{
			"diet": {
				"Focus on iron-rich foods to replenish lost nutrients.",
				"Bone broth can help with hydration and provide minerals such as magnesium, which may reduce cramps.",
				"Consume anti-inflammatory foods like berries and leafy greens.",
			},
			"exercise": {
				"Stick to light activities such as walking or gentle stretching.",
				"Avoid high-intensity workouts, as your energy might be lower.",
			},
			"mental health": {
				"Practice self-care and relaxation techniques like reading or journaling.",
				"Use heat therapy for comfort.",
			},
			"weight loss": {
				"Your body releases retained water as hormone levels drop.",
				"Avoid restrictive dieting during this phase.",
			},
			"fasting": {
				"Fasting can be kept moderate (12-14 hours) to support recovery.",
			},
		},
	},
	{
		Name:        PhaseFollicular,
		Description: "The phase when follicles in the ovary mature and rising estrogen promotes the growth of the uterine lining.",
		Symptoms:    []string{"Increased energy", "Improved mood", "Higher cognitive abilities"},
		Tips: map[string][]string{
			"diet": {
				"Incorporate nutrient-dense foods for optimal hormone production.",
			},
			"exercise": {
				"Take advantage of increased energy by engaging in high-intensity workouts.",
				"This is the best phase for building muscle and endurance.",
			},
			"mental health": {
				"Channel your improved mood into creative projects or social activities.",
				"Your focus and motivation are likely at their peak, so use this phase for planning and productivity.",
			},
			"weight loss": {
				"This is a good phase for weight loss efforts due to increased metabolism.",
			},
			"fasting": {
				"This is an optimal time to extend fasting windows.",
				"Stay hydrated throughout your fast.",
			},
		},
	},
	{
		Name:        PhaseOvulation,
		Description: "The phase when an egg is released from the ovary. Estrogen peaks, and progesterone begins to rise.",
		Symptoms:    []string{"Mild pelvic pain", "Increased libido", "Breast tenderness"},
		Tips: map[string][]string{
			"diet": {
				"Consume foods rich in zinc and magnesium to support hormone production.",
				"Hydration is key.",
			},
			"exercise": {
				"Engage in moderate-intensity exercises to maintain energy balance.",
				"Incorporate cardio and strength training.",
			},
			"mental health": {
				"Use this high-energy time for social connections and communication.",
			},
			"weight loss": {
				"Continue with balanced meals and regular exercise for steady progress.",
			},
			"fasting": {
				"Short fasts may be beneficial, but if you feel strong and energetic continue with longer fasting windows.",
			},
		},
	},
	{
		Name:        PhaseLuteal,
		Description: "The phase after ovulation and before the next menstrual period.",
		Symptoms:    []string{"Bloating", "Mood swings", "Fatigue"},
		Tips: map[string][]string{
			"diet": {
				"Include complex carbohydrates and foods rich in B vitamins to combat PMS symptoms.",
				"Limit processed foods, sugar, and caffeine.",
			},
			"exercise": {
				"Focus on low-impact exercises like swimming or pilates to manage discomfort.",
				"Listen to your body and adjust your workout intensity as needed.",
			},
			"mental health": {
				"Practice mindfulness and stress-reduction techniques to manage mood changes.",
			},
			"weight loss": {
				"Temporary weight gain is common during this phase due to water retention. This is normal and typically resolves after menstruation.",
				"Focus on maintaining rather than losing.",
			},
			"fasting": {
				"Shorter fasting windows may be more comfortable during this phase.",
			},
		},
	},
	{
		Name:        PhasePredicted,
		Description: "Days when your next period is expected to occur, projected from your average cycle length.",
	},
}
