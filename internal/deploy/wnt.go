package deploy

const (
	wntContractName = "WNT"
	wntNetwork      = "mantleSepolia"
)

// Wrapped native token, WETH9 layout. The constructor takes no inputs.
const wntABI = `[
	{"inputs":[],"stateMutability":"nonpayable","type":"constructor"},
	{"inputs":[],"name":"deposit","outputs":[],"stateMutability":"payable","type":"function"},
	{"inputs":[{"name":"wad","type":"uint256"}],"name":"withdraw","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

func init() {
	DefaultRegistry.MustRegister(NewWNT())
}

// NewWNT returns the wrapped native token step. It only runs on mantleSepolia for now and needs DataStore first.
func NewWNT() *DeployFunction {
	fn, err := CreateDeployFunction(Options{
		ContractName:  wntContractName,
		ID:            "WNT_mantleSepolia",
		GetDeployArgs: NoArgs,
		ABI:           wntABI,
	})
	if err != nil {
		panic(err)
	}

	fn.Skip = OnlyOn(wntNetwork)
	fn.Tags = []string{"WNT"}
	fn.Dependencies = []string{"DataStore"}
	return fn
}
