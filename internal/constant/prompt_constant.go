package constant

// Few-shot examples embedded verbatim in the prompts. They use the same keys
// the entities decode.

const PlanExampleJSON = `{
  "title": "Les Bases de PYTHON pour Débutants",
  "sections": [
    {
      "section": "Introduction à Python",
      "subsections": [
        "Qu'est-ce que Python ?",
        "Pourquoi apprendre Python ?",
        "Installation de Python et configuration de l'environnement",
        "Premier programme : 'Hello, World!'"
      ]
    },
    {
      "section": "Les Fondamentaux de Python",
      "subsections": [
        "Les variables et les types de données",
        "Les opérateurs (arithmétiques, de comparaison, logiques)",
        "Les structures de contrôle (if, else, elif)",
        "Les boucles (for, while)"
      ]
    },
    {
      "section": "Conclusion",
      "subsections": "none"
    }
  ]
}`

const DailyPlanExampleJSON = `[
  {
    "day": 1,
    "sessions": [
      {
        "title": "Introduction au Machine Learning",
        "subsections": [
          "Définition du Machine Learning",
          "Importance et applications",
          "Différence avec la programmation traditionnelle"
        ]
      },
      {
        "title": "Types de Machine Learning",
        "subsections": ["Tableau des types principaux", "Exemples concrets"]
      }
    ]
  },
  {
    "day": 2,
    "sessions": [
      {
        "title": "Étapes clés du développement d'un modèle",
        "subsections": ["Collecte des données", "Prétraitement", "Entraînement", "Évaluation", "Déploiement"]
      }
    ]
  }
]`

const ContentExampleJSON = `{
  "title": "Introduction à Python",
  "subsections": [
    {
      "title": "Définition de Python",
      "content": "Python est un langage interprété, multi-paradigme et open-source.",
      "bullets": ["Lisibilité", "Typage dynamique"]
    },
    {
      "title": "Premier script",
      "content": "Un script Python s'exécute ligne par ligne.",
      "code": ["# Affiche un message", "print(\"Hello, World!\")"]
    },
    {
      "title": "Domaines d'application",
      "content": "Python est utilisé dans de nombreux domaines.",
      "table": [
        ["Domaine", "Exemples d'outils"],
        ["Data Science", "Pandas, NumPy"],
        ["Web", "Django, Flask"],
        ["Intelligence Artificielle", "TensorFlow, Keras"]
      ]
    }
  ]
}`

const QuizExampleJSON = `[
  {
    "question": "Quels éléments sont nécessaires pour définir une fonction en Python ?",
    "choix_1": "Le mot-clé def",
    "choix_2": "Le nom de la fonction",
    "choix_3": "Un point-virgule à la fin",
    "reponse": ["choix_1", "choix_2"]
  },
  {
    "question": "Quel mot-clé permet de créer une fonction en Python ?",
    "choix_1": "function",
    "choix_2": "def",
    "choix_3": "fun",
    "reponse": ["choix_2"]
  },
  {
    "question": "Que renvoie l'instruction print(type(42)) ?",
    "choix_1": "<class 'str'>",
    "choix_2": "<class 'float'>",
    "choix_3": "<class 'int'>",
    "reponse": ["choix_3"]
  }
]`

const QuizSystemPrompt = `Tu es un assistant pédagogique spécialisé dans la génération de quiz à partir de contenus de formation.
Tu génères des questions pertinentes, claires et adaptées au niveau indiqué (débutant, intermédiaire ou avancé).
Chaque question propose exactement trois choix (choix_1, choix_2, choix_3) et indique la ou les bonnes réponses dans "reponse".
Tu évites le contenu flou, répétitif ou hors sujet : chaque question teste une notion précise du contenu fourni.
Tu réponds uniquement avec du JSON, sans aucun texte autour.`

const JSONOnlyInstruction = "Le contenu doit être structuré en JSON. Commence à générer le JSON directement sans ajouter d'autre message."
