package health

// Input represents the input for health check endpoint
type Input struct{}

// Output represents the output for health check endpoint
type Output struct {
	Body Response
}

type Response struct {
	Status     string `json:"status" example:"OK" enum:"OK,UNAVAILABLE" doc:"Health status of the service"`
	Storage    string `json:"storage,omitempty" example:"memory" doc:"Storage backend"`
	AccessMode string `json:"access_mode,omitempty" example:"bearer" doc:"How /blog and /blogs are guarded"`
}
