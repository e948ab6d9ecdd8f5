package handlers

import (
	repo "github.com/lucas-barreto/foodcheck/internal/repo"
)

var (
	userRepo    repo.UserRepository
	companyRepo repo.CompanyRepository
	productRepo repo.ProductRepository
	checkRepo   repo.ProductCheckRepository
	refChecker  repo.RefChecker
)

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetCompanyRepo(r repo.CompanyRepository) {
	companyRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetCheckRepo(r repo.ProductCheckRepository) {
	checkRepo = r
}

func SetRefChecker(c repo.RefChecker) {
	refChecker = c
}
