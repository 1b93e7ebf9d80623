package drafting

import "github.com/fift2939-create/ather1/internal/llm"

var (
	str  = llm.StringSchema
	num  = llm.NumberSchema
	list = func() *llm.Schema { return llm.ArraySchema(str()) }
)

// ideaBatchSchema is the response shape for GenerateIdeas.
var ideaBatchSchema = llm.ObjectSchema(map[string]*llm.Schema{
	"ideas": llm.ArraySchema(llm.ObjectSchema(map[string]*llm.Schema{
		"name":        str(),
		"description": str(),
		"targetGroup": str(),
		"sector":      str(),
	}, "name", "description", "targetGroup", "sector")),
}, "ideas")

var budgetLineSchema = llm.ObjectSchema(map[string]*llm.Schema{
	"budgetCode":    str(),
	"item":          str(),
	"monthlyCost":   num(),
	"allocation":    str(),
	"quantity":      str(),
	"unit":          str(),
	"frequency":     num(),
	"frequencyUnit": str(),
	"total":         num(),
	"description":   str(),
	"category":      str(),
}, "item", "total", "category", "monthlyCost", "quantity", "frequency")

// proposalSchema is the response shape for DraftProposal.
var proposalSchema = llm.ObjectSchema(map[string]*llm.Schema{
	"title":            str(),
	"executiveSummary": str(),
	"problemAnalysis":  str(),
	"justification":    str(),
	"theoryOfChange":   str(),
	"generalGoal":      str(),
	"specificGoals":    list(),
	"swot": llm.ObjectSchema(map[string]*llm.Schema{
		"strengths":     list(),
		"weaknesses":    list(),
		"opportunities": list(),
		"threats":       list(),
	}),
	"targets": llm.ObjectSchema(map[string]*llm.Schema{
		"direct":   str(),
		"indirect": str(),
	}),
	"scope": str(),
	"activities": llm.ArraySchema(llm.ObjectSchema(map[string]*llm.Schema{
		"activity": str(),
		"details":  str(),
		"output":   str(),
	})),
	"results": list(),
	"mePlan": llm.ObjectSchema(map[string]*llm.Schema{
		"indicators": list(),
		"tools":      list(),
		"mechanism":  str(),
	}),
	"risks": llm.ArraySchema(llm.ObjectSchema(map[string]*llm.Schema{
		"risk":       str(),
		"impact":     {Type: llm.TypeString, Enum: []string{"High", "Medium", "Low"}},
		"mitigation": str(),
	})),
	"sustainability": str(),
	"assumptions":    str(),
	"budget":         llm.ArraySchema(budgetLineSchema),
}, "title", "executiveSummary", "budget", "activities", "mePlan")
