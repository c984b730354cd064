package debug

import (
	"blogkeeper/internal/domain/blog"
	"blogkeeper/internal/domain/user"
)

type rawUsersOutput struct {
	Body []user.User
}

type rawBlogsOutput struct {
	Body []blog.Blog
}
