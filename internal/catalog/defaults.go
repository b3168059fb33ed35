package catalog

// Default returns the shipped catalog.
func Default() *Catalog {
	return New(defaultLibraries(), defaultBoilerplates())
}

// defaultLibraries is ordered: the wizard lists entries in this order and
// the frontend assembler accumulates packages in this order.
func defaultLibraries() []Library {
	return []Library{
		{Name: LibReact},
		{
			Name:     LibTailwind,
			Announce: "Installing Tailwind CSS and its dependencies...",
			Setup:    SetupTailwind,
			SetupPackages: []Package{
				{Name: "tailwindcss", Version: "3.2.7"},
				{Name: "postcss", Version: "8.4.21"},
				{Name: "autoprefixer", Version: "10.4.13"},
			},
		},
		{Name: LibTypeScript, Setup: SetupTypeScriptTemplate},
		{
			Name:         LibFormik,
			Announce:     "Adding Formik and Yup...",
			Dependencies: []Package{{Name: "formik"}, {Name: "yup"}},
		},
		{
			Name:         LibReactHookForm,
			Announce:     "Adding React Hook Form...",
			Dependencies: []Package{{Name: "react-hook-form"}},
		},
		{
			Name:         LibReactRouter,
			Announce:     "Adding React Router...",
			Dependencies: []Package{{Name: "react-router-dom"}},
		},
		{
			Name:         LibTanStackQuery,
			Announce:     "Adding TanStack Query...",
			Dependencies: []Package{{Name: "@tanstack/react-query"}},
		},
		{
			Name:         LibZustand,
			Announce:     "Adding Zustand for state management...",
			Dependencies: []Package{{Name: "zustand"}},
		},
		{
			Name:         LibReduxToolkit,
			Announce:     "Adding Redux Toolkit and React-Redux...",
			Dependencies: []Package{{Name: "@reduxjs/toolkit"}, {Name: "react-redux"}},
		},
	}
}

func defaultBoilerplates() []Boilerplate {
	return []Boilerplate{
		{
			Name: "FastAPI + React (fastapi/full-stack-fastapi-template)",
			URL:  "https://github.com/fastapi/full-stack-fastapi-template.git",
		},
		{
			Name: "MERN Boilerplate (djizco/mern-boilerplate)",
			URL:  "https://github.com/djizco/mern-boilerplate.git",
		},
		{
			Name: "Fullstack starter (Sairyss/fullstack-starter-template)",
			URL:  "https://github.com/Sairyss/fullstack-starter-template.git",
		},
		{
			Name: "React Boilerplate (frontend-only) (react-boilerplate/react-boilerplate)",
			URL:  "https://github.com/react-boilerplate/react-boilerplate.git",
		},
		{
			Name: "Django + React (vintasoftware/django-react-boilerplate)",
			URL:  "https://github.com/vintasoftware/django-react-boilerplate.git",
		},
	}
}
