package entity

// StepPlan is the evaluated outcome of one deployment step for a single network.
type StepPlan struct {
	ID                        string   `json:"id"`
	ContractName              string   `json:"contractName"`
	Network                   string   `json:"network"`
	Tags                      []string `json:"tags"`
	Dependencies              []string `json:"dependencies"`
	Skipped                   bool     `json:"skipped"`
	ArgCount                  int      `json:"argCount"`
	EncodedArgs               string   `json:"encodedArgs"` // hex, "0x" for a constructor without inputs
	ExistingMainnetDeployment bool     `json:"existingMainnetDeployment"`
}
