package http

import "github.com/lucas-barreto/foodcheck/internal/repo"

var userRepo repo.UserRepository

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}
