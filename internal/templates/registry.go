package templates

import (
	"path"
	"strings"
)

// ManifestPath is the package manifest written by the manifest builder.
const ManifestPath = "package.json"

// SkeletonDirs are created in every project, even when they stay empty.
var SkeletonDirs = []string{
	"src/config",
	"src/middleware",
	"src/controllers",
	"src/models",
	"src/routes",
	"src/schemas",
}

// Predicate selects the configurations a file variant applies to.
type Predicate func(Configuration) bool

// FileSpec describes one generated file variant.
// Several specs may share a Path when their predicates are mutually exclusive.
type FileSpec struct {
	// Path is the output path relative to the project root.
	Path string

	// Template is the embedded template path relative to files/.
	Template string

	// Description is shown next to the path in the created file tree.
	Description string

	// Phase is the composition step that writes the file.
	Phase Phase

	// When selects the configurations that emit this variant.
	When Predicate

	// Mount is the URL prefix the bootstrap file mounts a router file on.
	Mount string

	// Var is the bootstrap variable name bound to a router file.
	Var string
}

// Router is a route file mounted by the application bootstrap file.
type Router struct {
	// Var is the variable the router module is bound to.
	Var string

	// Require is the module path relative to src/.
	Require string

	// Mount is the URL prefix.
	Mount string
}

func always(Configuration) bool { return true }

func jwtAuth(c Configuration) bool { return c.JWT() }

func userPost(c Configuration) bool { return c.HasModels() }

func zodOn(c Configuration) bool { return c.UsesZod() }

func swaggerOn(c Configuration) bool { return c.Swagger }

func sequelizeORM(c Configuration) bool { return !c.UsePrisma }

func prismaORM(c Configuration) bool { return c.UsePrisma }

func allOf(preds ...Predicate) Predicate {
	return func(c Configuration) bool {
		for _, p := range preds {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

// specs is the internal registry of generated files, in write order.
var specs = []FileSpec{
	{Path: ".env.example", Template: "env.example.tmpl", Description: "Environment template", When: always},
	{Path: ".gitignore", Template: "gitignore.tmpl", Description: "Git ignore rules", When: always},
	{Path: "README.md", Template: "README.md.tmpl", Description: "Project documentation", When: always},

	{Path: "src/app.js", Template: "src/app.js.tmpl", Description: "Express app setup", When: always},
	{Path: "src/server.js", Template: "src/server.sequelize.js.tmpl", Description: "Server entry point", When: sequelizeORM},
	{Path: "src/server.js", Template: "src/server.prisma.js.tmpl", Description: "Server entry point", When: prismaORM},
	{Path: "src/config/database.js", Template: "src/config/database.sequelize.js.tmpl", Description: "Sequelize connection", When: sequelizeORM},
	{Path: "src/config/database.js", Template: "src/config/database.prisma.js.tmpl", Description: "Prisma client", When: prismaORM},
	{Path: "src/middleware/errorHandler.js", Template: "src/middleware/errorHandler.js.tmpl", Description: "Error handling middleware", When: always},
	{Path: "src/routes/index.js", Template: "src/routes/index.js.tmpl", Description: "Health and welcome routes", When: always, Mount: "/", Var: "indexRoutes"},

	{Path: "src/routes/auth.js", Template: "src/routes/auth.js.tmpl", Description: "Auth routes", When: jwtAuth, Mount: "/api/auth", Var: "authRoutes"},
	{Path: "src/middleware/auth.js", Template: "src/middleware/auth.sequelize.js.tmpl", Description: "JWT guard", When: allOf(jwtAuth, sequelizeORM)},
	{Path: "src/middleware/auth.js", Template: "src/middleware/auth.prisma.js.tmpl", Description: "JWT guard", When: allOf(jwtAuth, prismaORM)},
	{Path: "src/controllers/authController.js", Template: "src/controllers/authController.sequelize.js.tmpl", Description: "Register and login", When: allOf(jwtAuth, sequelizeORM)},
	{Path: "src/controllers/authController.js", Template: "src/controllers/authController.prisma.js.tmpl", Description: "Register and login", When: allOf(jwtAuth, prismaORM)},

	{Path: "src/models/User.js", Template: "src/models/User.sequelize.js.tmpl", Description: "User model", When: allOf(userPost, sequelizeORM)},
	{Path: "src/models/User.js", Template: "src/models/User.prisma.js.tmpl", Description: "User model", When: allOf(userPost, prismaORM)},
	{Path: "src/models/Post.js", Template: "src/models/Post.sequelize.js.tmpl", Description: "Post model", When: allOf(userPost, sequelizeORM)},
	{Path: "src/models/Post.js", Template: "src/models/Post.prisma.js.tmpl", Description: "Post model", When: allOf(userPost, prismaORM)},
	{Path: "src/controllers/userController.js", Template: "src/controllers/userController.sequelize.js.tmpl", Description: "User CRUD", When: allOf(userPost, sequelizeORM)},
	{Path: "src/controllers/userController.js", Template: "src/controllers/userController.prisma.js.tmpl", Description: "User CRUD", When: allOf(userPost, prismaORM)},
	{Path: "src/controllers/postController.js", Template: "src/controllers/postController.sequelize.js.tmpl", Description: "Post CRUD", When: allOf(userPost, sequelizeORM)},
	{Path: "src/controllers/postController.js", Template: "src/controllers/postController.prisma.js.tmpl", Description: "Post CRUD", When: allOf(userPost, prismaORM)},
	{Path: "src/routes/users.js", Template: "src/routes/users.js.tmpl", Description: "User routes", When: userPost, Mount: "/api/users", Var: "userRoutes"},
	{Path: "src/routes/posts.js", Template: "src/routes/posts.js.tmpl", Description: "Post routes", When: userPost, Mount: "/api/posts", Var: "postRoutes"},

	{Path: "src/schemas/authSchema.js", Template: "src/schemas/authSchema.js.tmpl", Description: "Auth validation schemas", When: allOf(zodOn, jwtAuth)},
	{Path: "src/schemas/userSchema.js", Template: "src/schemas/userSchema.js.tmpl", Description: "User validation schemas", When: allOf(zodOn, userPost)},
	{Path: "src/schemas/postSchema.js", Template: "src/schemas/postSchema.js.tmpl", Description: "Post validation schemas", When: allOf(zodOn, userPost)},

	{Path: "src/config/swagger.js", Template: "src/config/swagger.js.tmpl", Description: "OpenAPI configuration", When: swaggerOn},

	{Path: "prisma/schema.prisma", Template: "prisma/schema.prisma.tmpl", Description: "Prisma schema", Phase: PhasePrisma, When: prismaORM},
}

// Specs returns every registered file variant.
func Specs() []FileSpec {
	out := make([]FileSpec, len(specs))
	copy(out, specs)
	return out
}

// Select returns the file variants emitted for a configuration in the given
// phase, in write order.
func Select(cfg Configuration, phase Phase) []FileSpec {
	var out []FileSpec
	for _, s := range specs {
		if s.Phase == phase && s.When(cfg) {
			out = append(out, s)
		}
	}
	return out
}

// Lookup returns the variant emitted at path for a configuration.
func Lookup(cfg Configuration, p string) (FileSpec, bool) {
	for _, s := range specs {
		if s.Path == p && s.When(cfg) {
			return s, true
		}
	}
	return FileSpec{}, false
}

// EmittedPaths returns the set of every path a configuration produces,
// including the manifest and files of later phases.
func EmittedPaths(cfg Configuration) map[string]bool {
	paths := map[string]bool{ManifestPath: true}
	for _, s := range specs {
		if s.When(cfg) {
			paths[s.Path] = true
		}
	}
	return paths
}

// Routers returns the router files mounted by the bootstrap file.
func Routers(cfg Configuration) []Router {
	var out []Router
	for _, s := range Select(cfg, PhaseBase) {
		if s.Mount == "" {
			continue
		}
		out = append(out, Router{
			Var:     s.Var,
			Require: "./" + strings.TrimSuffix(strings.TrimPrefix(s.Path, "src/"), path.Ext(s.Path)),
			Mount:   s.Mount,
		})
	}
	return out
}
