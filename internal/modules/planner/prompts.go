// README: Pure prompt builders for the four generation stages.
package planner

import "fmt"

// BuildPrompt renders the prompt for a stage. Pure and deterministic: the
// same preferences and city always produce the same string. city is ignored
// for the city-selection stage and required for the rest.
func BuildPrompt(stage Stage, p PreferenceRecord, city string) string {
	switch stage {
	case StageCitySelection:
		return citySelectionPrompt(p)
	case StageResearch:
		return researchPrompt(city, p)
	case StageItinerary:
		return itineraryPrompt(city, p)
	case StageBudget:
		return budgetPrompt(city, p)
	}
	return ""
}

func citySelectionPrompt(p PreferenceRecord) string {
	return fmt.Sprintf(`As a travel expert, recommend 3 best cities to visit based on these preferences:

Travel Type: %s
Interests: %s
Season: %s
Budget Range: %s
Duration: %d days

For each city, provide:
1. City name and country
2. Why it matches their travel type and interests
3. Why it's perfect for the specified season
4. Brief highlight of what makes it special

Format as a numbered list with city names clearly stated.`,
		p.TravelType, p.interestList(), p.Season, p.BudgetTier, p.DurationDays)
}

func researchPrompt(city string, p PreferenceRecord) string {
	return fmt.Sprintf(`Provide comprehensive research about %s for a traveler with these preferences:
Travel Type: %s
Interests: %s
Duration: %d days

Include:
1. TOP 5 ATTRACTIONS: Must-visit places with brief descriptions and estimated time
2. LOCAL CUISINE: Signature dishes and where to find them
3. CULTURAL INSIGHTS: Important customs, etiquette, and cultural norms
4. ACCOMMODATION: Best areas to stay for different budgets
5. TRANSPORTATION: How to get around the city efficiently
6. BEST TIME TO VISIT: Optimal months, weather, and crowds
7. PRACTICAL TIPS: Currency, safety, language basics, common scams

Make this practical and actionable for travelers.`,
		city, p.TravelType, p.interestList(), p.DurationDays)
}

func itineraryPrompt(city string, p PreferenceRecord) string {
	return fmt.Sprintf(`Create a detailed %d-day itinerary for %s based on:
- Travel Type: %s
- Interests: %s
- Duration: %d days

For each day, include:
1. DAY NUMBER: Clearly state the day (e.g., 'Day 1: Arrival and City Exploration')
2. Morning activities (9 AM - 12 PM) with specific attractions/locations
3. Afternoon activities (12 PM - 5 PM) with specific attractions/locations
4. Evening activities (5 PM - 9 PM) including dinner recommendations
5. Recommended restaurants for each meal with cuisine type
6. Transportation methods between locations
7. Estimated time for each activity
8. Booking requirements or tips

Make activities geographically logical and account for travel time.`,
		p.DurationDays, city, p.TravelType, p.interestList(), p.DurationDays)
}

func budgetPrompt(city string, p PreferenceRecord) string {
	return fmt.Sprintf(`Create a realistic budget plan for a %d-day trip to %s
with a %s budget.

Break down costs for:
1. ACCOMMODATION: Per night costs and total
2. MEALS: Daily averages for Breakfast, Lunch, Dinner
3. TRANSPORTATION: Local transport, airport transfers
4. ATTRACTIONS: Entry fees for major sights
5. SHOPPING & MISCELLANEOUS: Daily allowance for souvenirs, snacks
6. EMERGENCY FUND: 10-15%% buffer of total cost

Provide:
- Daily budget estimates for each category
- Total estimated budget for the entire trip
- Money-saving tips specific to %s
- Splurge recommendations with costs

Use local currency or USD with clear indication.`,
		p.DurationDays, city, p.BudgetTier, city)
}
