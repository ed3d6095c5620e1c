package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . AgentUseCases
//go:generate moq -out ../mock/repository.go -pkg mock . AgentRepository
//go:generate moq -out ../mock/clients.go -pkg mock . VendorClient
