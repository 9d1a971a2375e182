package models

import "strings"

// Plan - фиксированный тариф пополнения кредитов. Клиент передает только
// идентификатор; количество кредитов и цена всегда берутся из этой таблицы,
// чтобы их нельзя было подделать на стороне клиента.
type Plan struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
	Amount  int    `json:"amount"` // цена в основной валюте
}

var plans = map[string]Plan{
	"basic":    {ID: "basic", Name: "Basic", Credits: 100, Amount: 10},
	"advance":  {ID: "advance", Name: "Advance", Credits: 500, Amount: 50},
	"business": {ID: "business", Name: "Business", Credits: 5000, Amount: 250},
}

// ResolvePlan находит тариф по идентификатору клиента. Идентификаторы
// нормализуются: регистр, суффиксы "-plan"/"_plan" и алиас "advanced"
// ("basic", "Basic-Plan", "basic_plan" - один и тот же тариф).
func ResolvePlan(planID string) (Plan, bool) {
	id := strings.ToLower(strings.TrimSpace(planID))
	id = strings.TrimSuffix(id, "-plan")
	id = strings.TrimSuffix(id, "_plan")
	if id == "advanced" {
		id = "advance"
	}
	plan, ok := plans[id]
	return plan, ok
}
