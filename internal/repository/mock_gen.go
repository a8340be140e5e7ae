// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./membership.go -destination=../mocks/membership_repository.go -package=mocks MembershipRepositoryIface
//go:generate mockgen -source=./plan.go -destination=../mocks/plan_repository.go -package=mocks PlanRepositoryIface
//go:generate mockgen -source=./subscription.go -destination=../mocks/subscription_repository.go -package=mocks SubscriptionRepositoryIface
//go:generate mockgen -source=./client.go -destination=../mocks/client_repository.go -package=mocks ClientRepositoryIface
//go:generate mockgen -source=./item.go -destination=../mocks/item_repository.go -package=mocks ItemRepositoryIface
