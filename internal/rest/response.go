package rest

type ResponseError struct {
	Message string `json:"message"`
}

const productNotFoundMessage = "product not found, please check the code or try another"
